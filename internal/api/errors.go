package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// ErrInvalidTaskID is returned when a path parameter is not a positive integer.
var ErrInvalidTaskID = errors.New("invalid task ID")

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, ErrInvalidTaskID):
		return http.StatusBadRequest

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing error message for err.
// Validation reasons and not-found IDs are safe to expose; anything
// else collapses to a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	var notFoundErr *store.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Reason

	case errors.Is(err, ErrInvalidTaskID):
		return "Invalid task ID"

	case errors.As(err, &notFoundErr):
		return fmt.Sprintf("Task %d not found", notFoundErr.ID)

	case store.IsNotFoundError(err):
		return "Task not found"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err, logging the full error
// and sending only the sanitized message to the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
