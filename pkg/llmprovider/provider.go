package llmprovider

import "context"

// Provider is a single LLM backend.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "gemini", "qwen").
	Name() string
	Model() string
}

// TextGenerator is the narrow view used by callers that only need text back.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

// Request is a normalized text generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	// JSONOutput asks providers that support it for a JSON-only answer.
	JSONOutput bool
}

// Message is one conversational turn. Role is "user" or "assistant".
type Message struct {
	Role string
	Text string
}

type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
