package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantReused bool
	}{
		{name: "no header generates id", header: ""},
		{name: "valid uuid is reused", header: "6f1c7c1e-8d3b-4c8e-9b36-0c1f0d4b2a11", wantReused: true},
		{name: "malformed header is replaced", header: "not-a-uuid"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf, l := logger.NewTestLogger(t)

			var seenTraceID string
			handler := NewTraceMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenTraceID = shared.GetTraceID(r.Context())
				logger.FromContext(r.Context()).Info("inside handler")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tc.header != "" {
				req.Header.Set(TraceIDHeader, tc.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			_, err := uuid.Parse(seenTraceID)
			require.NoError(t, err, "trace ID should be a UUID")
			assert.Equal(t, seenTraceID, w.Header().Get(TraceIDHeader))
			if tc.wantReused {
				assert.Equal(t, tc.header, seenTraceID)
			} else {
				assert.NotEqual(t, tc.header, seenTraceID)
			}
			logger.AssertLogField(t, buf, "trace_id", seenTraceID)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	buf, l := logger.NewTestLogger(t)

	handler := NewTraceMiddleware(l)(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logger.AssertLogContains(t, buf, "request completed")
	logger.AssertLogField(t, buf, "method", "POST")
	logger.AssertLogField(t, buf, "path", "/api/tasks")
	logger.AssertLogField(t, buf, "status", float64(http.StatusCreated))
	logger.AssertLogField(t, buf, "bytes", float64(8))
}
