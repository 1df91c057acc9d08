package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/config"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/phrazzld/tasks-api/internal/store"
)

// demoTasks are loaded when store.seed_demo is enabled.
var demoTasks = []domain.Task{
	{ID: 1, Title: "Learn the task API", Completed: false},
	{ID: 2, Title: "Build a REST client", Completed: false},
}

// application holds the shared application dependencies.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	taskStore store.TaskStore
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var seed []domain.Task
	if cfg.Store.SeedDemo {
		seed = demoTasks
	}

	taskStore, err := memory.NewMemoryTaskStore(logger, seed...)
	if err != nil {
		return nil, fmt.Errorf("failed to create task store: %w", err)
	}
	logger.Info("Task store initialized", "seeded_tasks", len(seed))

	return &application{
		config:    cfg,
		logger:    logger,
		taskStore: taskStore,
	}, nil
}

// setupRouter creates the HTTP handler serving the API.
func (app *application) setupRouter() http.Handler {
	return api.NewRouter(app.taskStore, api.RouterConfig{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		Logger:         app.logger,
	})
}

// Run starts the HTTP server and blocks until ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
