package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across services and handlers.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeConflict   = "CONFLICT"
	CodeAuth       = "AUTH_ERROR"
	CodeForbidden  = "FORBIDDEN"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized API error body.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// AppError represents a custom application error
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
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func NewAuthError(message string) *AppError {
	return &AppError{Code: CodeAuth, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Server error", Err: err}
}

// RespondWithError writes a standardized error response. Internal details are
// never included in the body; callers log them server-side.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	msg := "Server error"
	if appErr, ok := err.(*AppError); ok && appErr.Code != CodeInternal {
		msg = appErr.Message
	}
	return c.Status(status).JSON(ErrorResponse{Msg: msg})
}
