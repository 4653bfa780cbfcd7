package dto

import "time"

// APIResponse provides the standard success response envelope
type APIResponse struct {
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewAPIResponse creates a success response with data
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success response carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
}
