package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse is the uniform success envelope returned by every endpoint.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the uniform failure envelope. Error carries the underlying
// message verbatim for validation/store errors and a fixed message for
// not-found lookups.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AppError is a custom application error carrying a machine-readable code.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: resource + " not found",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// Respond writes the success envelope with the given status and payload.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(SuccessResponse{Success: true, Data: data})
}

// RespondWithError writes the failure envelope. AppError messages are used
// as-is; other errors surface their message string verbatim.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	msg := err.Error()
	if appErr, ok := err.(*AppError); ok {
		msg = appErr.Message
	}
	return c.Status(status).JSON(ErrorResponse{Success: false, Error: msg})
}
