package models

// Error messages returned to clients
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgPizzaNotFound      = "Pizza not found"
	MsgValidationErrors   = "validation errors"
)

// ErrorResponse is the single-message error body used by the restaurant endpoints
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the error body used by POST /restaurant_pizzas and failed writes
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorResponse creates a single-message error body
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorsResponse creates an error body carrying the given messages
func NewErrorsResponse(messages ...string) ErrorsResponse {
	if messages == nil {
		messages = []string{}
	}
	return ErrorsResponse{Errors: messages}
}
