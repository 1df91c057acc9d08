package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails a domain precondition.
	// It is usually wrapped by a ValidationError carrying the specific reason.
	ErrValidation = errors.New("validation failed")
)

// Validation reasons reported to callers. They double as user-facing messages.
const (
	ReasonTitleRequired       = "title required"
	ReasonTitleTooShort       = "title too short"
	ReasonTitleNotString      = "title must be a string"
	ReasonCompletedNotBoolean = "completed must be boolean"
)

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field  string // The field that failed (e.g., "title")
	Reason string // Why it failed (e.g., "title too short")
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap returns ErrValidation so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field and reason.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: reason,
	}
}
