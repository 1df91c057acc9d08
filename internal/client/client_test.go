package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/tasks-api/internal/api"
	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	_, l := logger.NewTestLogger(t)
	taskStore, err := memory.NewMemoryTaskStore(l)
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(taskStore, api.RouterConfig{
		AllowedOrigins: []string{"http://localhost:4200"},
		Logger:         l,
	}))
	t.Cleanup(server.Close)

	c, err := New(server.URL, WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return c
}

func TestClient_CRUD(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	created, err := c.Create(ctx, "Write tests")
	require.NoError(t, err)
	assert.Equal(t, domain.Task{ID: 1, Title: "Write tests"}, *created)

	done := true
	updated, err := c.Update(ctx, created.ID, api.UpdateTaskRequest{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Write tests", updated.Title)

	pending := false
	reopened, err := c.Update(ctx, created.ID, api.UpdateTaskRequest{Completed: &pending})
	require.NoError(t, err)
	assert.False(t, reopened.Completed, "false must be sent, not dropped")

	tasks, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{ID: 1, Title: "Write tests"}}, tasks)

	deletedID, err := c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deletedID)

	tasks, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestClient_APIErrors(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.Create(ctx, "ab")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %v", err)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "title too short", apiErr.Message)
	assert.NotEmpty(t, apiErr.TraceID)

	_, err = c.Delete(ctx, 999)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Task 999 not found")

	title := "Renamed"
	_, err = c.Update(ctx, 999, api.UpdateTaskRequest{Title: &title})
	assert.True(t, IsNotFound(err))
}

func TestClient_ServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c, err := New(url)
	require.NoError(t, err)

	_, err = c.List(context.Background())
	assert.ErrorIs(t, err, ErrServerUnreachable)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New("not a url")
	assert.Error(t, err)
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "title required", (&APIError{StatusCode: 400, Message: "title required"}).Error())
	assert.Equal(t, "request failed with status 502", (&APIError{StatusCode: 502}).Error())
}
