package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenexus/gamenexus/internal/metrics"
	"github.com/gamenexus/gamenexus/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.NotEmpty(t, RequestIDFromContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	})

	rr := testutil.Serve(LoggingMiddleware(logger, rec, next), http.MethodPost, "/search", nil)

	require.True(t, nextCalled)
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "request complete")
	assert.Contains(t, buf.String(), "status_code=418")
	assert.Zero(t, rec.UpstreamCalls("http"), "http traffic is not an upstream")
}

func TestLoggingMiddlewareHonoursValidIncomingRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := testutil.NewRequest(http.MethodGet, "/news", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), "request_id=abc-123")
}

func TestLoggingMiddlewareReplacesInvalidRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	req := testutil.NewRequest(http.MethodGet, "/news", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces")

	rr := testutil.ServeRequest(LoggingMiddleware(nil, nil, next), req)
	got := rr.Header().Get("X-Request-ID")
	assert.NotEmpty(t, got)
	assert.NotEqual(t, "bad id with spaces", got)
}

func TestResponseWriterKeepsFirstStatus(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
		w.WriteHeader(http.StatusInternalServerError)
	})

	testutil.Serve(LoggingMiddleware(logger, nil, next), http.MethodGet, "/health", nil)
	assert.Contains(t, buf.String(), "status_code=200")
}

func TestRequestIDFromContextEmpty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"/search":       "/search",
		"/news?x=1":     "/news",
		"/health":       "/health",
		"/ready":        "/ready",
		"/wp-admin.php": "other",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizePath(in), in)
	}
}
