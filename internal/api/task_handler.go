package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/store"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// If logger is nil, a default logger will be used.
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if taskStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskStore cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CreateTask handles POST /api/tasks requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if !decodeRequest(w, r, &req, log) {
		return
	}

	// A missing title is reported with the same reason the store uses for an empty one
	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("validation error", slog.String("error", err.Error()))
		HandleAPIError(w, r, domain.NewValidationError("title", domain.ReasonTitleRequired))
		return
	}

	task, err := h.taskStore.Create(r.Context(), *req.Title)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("task created", slog.Int("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(*task))
}

// UpdateTask handles PUT /api/tasks/{id} requests
// Only the fields present in the body are changed.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := pathTaskID(w, r, log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !decodeRequest(w, r, &req, log) {
		return
	}

	task, err := h.taskStore.Update(r.Context(), id, req.ToPatch())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("task updated", slog.Int("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(*task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := pathTaskID(w, r, log)
	if !ok {
		return
	}

	deletedID, err := h.taskStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("task deleted", slog.Int("task_id", deletedID))
	shared.RespondWithJSON(w, r, http.StatusOK, DeleteTaskResponse{
		Message: "Task deleted",
		ID:      deletedID,
	})
}

// pathTaskID extracts the {id} path parameter as a positive integer.
// It writes an error response and returns false when the parameter is invalid.
func pathTaskID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		log.Debug("invalid task ID", slog.String("id", raw))
		HandleAPIError(w, r, ErrInvalidTaskID)
		return 0, false
	}

	return id, true
}

// decodeRequest decodes the JSON body into v. An empty body decodes as an
// empty object. Type mismatches on known fields become validation errors; any
// other failure is reported as a malformed request.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any, log *slog.Logger) bool {
	err := shared.DecodeJSON(w, r, v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	if fieldErr := fieldTypeError(err); fieldErr != nil {
		HandleAPIError(w, r, fieldErr)
		return false
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err)
		return false
	}

	log.Debug("invalid request format", slog.String("error", err.Error()))
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
	return false
}
