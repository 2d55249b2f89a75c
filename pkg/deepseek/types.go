package deepseek

import "github.com/tmc/langchaingo/llms"

// Config holds DeepSeek client configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Request is a single chat turn with an optional system prompt.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

type Response struct {
	Text         string
	StopReason   string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type implDeepSeek struct {
	chat  llms.Model
	model string
}
