package dto

// Result is the envelope of every API response.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps data in a successful Result.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail wraps an error message in a failed Result.
func Fail(message string) Result {
	return Result{Success: false, Error: message}
}
