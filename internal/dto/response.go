package dto

// Response is the envelope every API endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Error wraps a user-facing message in a failed envelope.
func Error(message string) Response {
	return Response{Success: false, Message: message}
}

// ValidationError wraps field-level errors in a failed envelope.
func ValidationError(message string, errors any) Response {
	return Response{Success: false, Message: message, Errors: errors}
}
