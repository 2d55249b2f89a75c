package response

// Resp is the envelope every endpoint answers with. ErrorCode is 0 on
// success and the HTTP status otherwise.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
