package response

// Resp is the standard JSON response body. ErrorCode is 0 on success and
// mirrors the HTTP status otherwise.
type Resp struct {
	ErrorCode int          `json:"error_code"`
	Message   string       `json:"message"`
	Data      any          `json:"data,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
}

// FieldError is one failed binding rule, e.g. {"field": "tasks[0].title", "rule": "required"}.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}
