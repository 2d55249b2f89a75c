package deepseek

const (
	// DefaultBaseURL is the OpenAI compatible DeepSeek endpoint.
	DefaultBaseURL = "https://api.deepseek.com/v1"

	DefaultModel = "deepseek-chat"
)
