package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is a user-visible request-shape error. Anything else that escapes
// a handler is treated as an internal failure and masked.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

// Request-shape errors surfaced as 400 JSON. The message strings are part of
// the API contract.
var (
	ErrEmptyMessage   = NewBadRequest("Message cannot be empty")
	ErrNoSession      = NewBadRequest("No session")
	ErrNoSessionFound = NewBadRequest("No session found")
)
