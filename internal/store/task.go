package store

import (
	"context"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskPatch carries the optional fields of an update.
// A nil field is left unchanged; a non-nil field is applied, so
// Completed set to a pointer to false is distinct from "do not touch".
type TaskPatch struct {
	Title     *string
	Completed *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

// TaskStore defines the interface for task data persistence.
// Every operation either fully succeeds or leaves the store unchanged.
type TaskStore interface {
	// Create validates the title, assigns the next ID and appends a new,
	// not yet completed task. Returns a *domain.ValidationError if the
	// title is empty or too short.
	Create(ctx context.Context, title string) (*domain.Task, error)

	// List returns every task in creation order.
	// The returned slice is a snapshot; mutating it does not affect the store.
	List(ctx context.Context) ([]domain.Task, error)

	// Update applies the supplied fields of patch to the task with the given ID.
	// Returns a *NotFoundError if no such task exists and a
	// *domain.ValidationError if a supplied field is invalid. All supplied
	// fields are validated before any of them is applied.
	Update(ctx context.Context, id int, patch TaskPatch) (*domain.Task, error)

	// Delete removes the task with the given ID and returns that ID.
	// Returns a *NotFoundError if no such task exists.
	// Deleted IDs are never assigned again.
	Delete(ctx context.Context, id int) (int, error)
}
