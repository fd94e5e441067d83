// Package dto defines data transfer objects for API requests and responses.
package dto

// DataResponse wraps every successful payload.
type DataResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// Data builds a success envelope.
func Data(data any) DataResponse {
	return DataResponse{Data: data}
}

// DataWithMessage builds a success envelope carrying a message.
func DataWithMessage(data any, message string) DataResponse {
	return DataResponse{Data: data, Message: message}
}
