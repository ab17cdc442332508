package utils

import "time"

// SuccessResponse is the envelope for every 2xx payload. Meta carries a
// server-side timestamp so monitoring clients polling the feed can order
// responses without trusting their own clocks.
type SuccessResponse struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Meta    *Meta `json:"meta,omitempty"`
}

// ErrorResponse pairs a stable machine-readable code (NOT_FOUND, INVALID_ID,
// CREATION_FAILED, ...) with a human-readable message.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Meta struct {
	Timestamp time.Time `json:"timestamp"`
}

func CreateErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: APIError{
			Code:    code,
			Message: message,
		},
	}
}

func CreateSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &Meta{
			Timestamp: time.Now(),
		},
	}
}

// CreateMessageResponse wraps a confirmation string, used by delete endpoints
// that have no record left to return.
func CreateMessageResponse(message string) SuccessResponse {
	return CreateSuccessResponse(map[string]string{
		"message": message,
	})
}
