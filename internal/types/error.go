package types

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error type tags rendered in the JSON envelope.
const (
	ErrTypeValidation           = "validation"
	ErrTypeUnauthenticated      = "unauthenticated"
	ErrTypeForbidden            = "forbidden"
	ErrTypeNotFound             = "not_found"
	ErrTypeConflict             = "conflict"
	ErrTypeReassignmentRequired = "reassignment_required"
	ErrTypeRender               = "render"
	ErrTypeInternal             = "internal"
)

// CustomError carries an HTTP status code and a taxonomy type alongside the
// message so the global error handler can render a structured response.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError reports missing or malformed input (400).
func NewValidationError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusBadRequest, Message: message, Type: ErrTypeValidation}
}

// NewUnauthenticatedError reports a missing or invalid credential (401).
func NewUnauthenticatedError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusUnauthorized, Message: message, Type: ErrTypeUnauthenticated}
}

// NewForbiddenError reports an ownership or role violation (403).
func NewForbiddenError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusForbidden, Message: message, Type: ErrTypeForbidden}
}

// NewNotFoundError reports a missing resource (404).
func NewNotFoundError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusNotFound, Message: message, Type: ErrTypeNotFound}
}

// NewConflictError reports a duplicate unique key. The original service
// answered duplicate usernames with 400, so that code is preserved.
func NewConflictError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusBadRequest, Message: message, Type: ErrTypeConflict}
}

// NewRenderError reports an upstream rendering failure (500).
func NewRenderError(message string) *CustomError {
	return &CustomError{Code: fiber.StatusInternalServerError, Message: message, Type: ErrTypeRender}
}

// ReassignmentRequiredError is returned when deleting a user that still owns
// records without naming a reassignment target. It carries the counts so
// callers can prompt.
type ReassignmentRequiredError struct {
	IntakeFormCount int64 `json:"intakeFormCount"`
	DocumentCount   int64 `json:"documentCount"`
}

func (e *ReassignmentRequiredError) Error() string {
	return fmt.Sprintf("user owns %d intake forms and %d documents; reassignment required",
		e.IntakeFormCount, e.DocumentCount)
}

// IsNotFound reports whether err is a not-found taxonomy error.
func IsNotFound(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Type == ErrTypeNotFound
}
