package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/store"
)

// MemoryTaskStore implements the store.TaskStore interface by keeping tasks
// in an ordered slice guarded by a single lock.
//
// Each mutating operation holds the write lock for its entire
// lookup-validate-mutate sequence, so concurrent callers observe
// the operations as if they ran one at a time.
type MemoryTaskStore struct {
	mu     sync.RWMutex
	tasks  []*domain.Task
	nextID int
	logger *slog.Logger
}

// NewMemoryTaskStore creates a new in-memory implementation of the TaskStore interface.
// Seed tasks are loaded in the given order and the ID counter starts one past
// the largest seeded ID. Seed titles are held to the same rules as Create.
// If logger is nil, a default logger will be used.
func NewMemoryTaskStore(logger *slog.Logger, seed ...domain.Task) (*MemoryTaskStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &MemoryTaskStore{
		tasks:  make([]*domain.Task, 0, len(seed)),
		nextID: 1,
		logger: logger.With(slog.String("component", "task_store")),
	}

	for _, t := range seed {
		if t.ID <= 0 {
			return nil, fmt.Errorf("%w: seed task ID must be positive, got %d", store.ErrInvalidEntity, t.ID)
		}
		if s.find(t.ID) >= 0 {
			return nil, fmt.Errorf("%w: seed task ID %d", store.ErrDuplicate, t.ID)
		}

		title, err := domain.NormalizeTitle(t.Title)
		if err != nil {
			return nil, fmt.Errorf("%w: seed task %d: %w", store.ErrInvalidEntity, t.ID, err)
		}

		s.tasks = append(s.tasks, &domain.Task{ID: t.ID, Title: title, Completed: t.Completed})
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}

	return s, nil
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *MemoryTaskStore) Create(ctx context.Context, title string) (*domain.Task, error) {
	normalized, err := domain.NormalizeTitle(title)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &domain.Task{
		ID:    s.nextID,
		Title: normalized,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)

	s.logger.DebugContext(ctx, "task created",
		slog.Int("task_id", task.ID),
		slog.Int("task_count", len(s.tasks)))

	created := *task
	return &created, nil
}

// List implements store.TaskStore.List
func (s *MemoryTaskStore) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		tasks[i] = *t
	}
	return tasks, nil
}

// Update implements store.TaskStore.Update
func (s *MemoryTaskStore) Update(
	ctx context.Context,
	id int,
	patch store.TaskPatch,
) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(id)
	if idx < 0 {
		return nil, &store.NotFoundError{ID: id}
	}
	task := s.tasks[idx]

	// Validate every supplied field before touching the task
	var title string
	if patch.Title != nil {
		normalized, err := domain.NormalizeTitle(*patch.Title)
		if err != nil {
			return nil, err
		}
		title = normalized
	}

	if patch.Title != nil {
		task.Title = title
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	s.logger.DebugContext(ctx, "task updated",
		slog.Int("task_id", id),
		slog.Bool("title_changed", patch.Title != nil),
		slog.Bool("completed_changed", patch.Completed != nil))

	updated := *task
	return &updated, nil
}

// Delete implements store.TaskStore.Delete
func (s *MemoryTaskStore) Delete(ctx context.Context, id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(id)
	if idx < 0 {
		return 0, &store.NotFoundError{ID: id}
	}
	s.tasks = slices.Delete(s.tasks, idx, idx+1)

	s.logger.DebugContext(ctx, "task deleted",
		slog.Int("task_id", id),
		slog.Int("task_count", len(s.tasks)))

	return id, nil
}

// find returns the index of the task with the given ID, or -1.
// Callers must hold s.mu.
func (s *MemoryTaskStore) find(id int) int {
	return slices.IndexFunc(s.tasks, func(t *domain.Task) bool {
		return t.ID == id
	})
}
