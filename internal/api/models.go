package api

import (
	"encoding/json"
	"errors"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// CreateTaskRequest represents the request body for creating a task.
// Title is a pointer so a missing field can be told apart from an empty string.
type CreateTaskRequest struct {
	Title *string `json:"title" validate:"required"`
}

// UpdateTaskRequest represents the request body for updating a task.
// Omitted or null fields are left unchanged.
type UpdateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// ToPatch converts the request into a store.TaskPatch.
func (r UpdateTaskRequest) ToPatch() store.TaskPatch {
	return store.TaskPatch{
		Title:     r.Title,
		Completed: r.Completed,
	}
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// DeleteTaskResponse confirms a deletion.
type DeleteTaskResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
	}
}

// tasksToResponse converts tasks to responses, never returning nil so the
// JSON encoding is always an array.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, taskToResponse(task))
	}
	return responses
}

// fieldTypeError translates a JSON type mismatch on a known field into a
// validation error. It returns nil for any other decoding failure.
func fieldTypeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil
	}

	switch typeErr.Field {
	case "title":
		return domain.NewValidationError("title", domain.ReasonTitleNotString)
	case "completed":
		return domain.NewValidationError("completed", domain.ReasonCompletedNotBoolean)
	default:
		return nil
	}
}
