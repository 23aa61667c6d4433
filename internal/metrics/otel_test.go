package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Nil(t, handler)
	assert.NotNil(t, shutdown)
}

func TestSetupEnabledExposesPrometheusMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "gamenexus-test",
	})
	require.NoError(t, err)
	require.NotNil(t, handler)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	rec.RecordHTTPRequest("POST", "/search", 200, time.Millisecond)
	rec.RecordUpstreamAttempt(UpstreamTwitch, time.Millisecond, nil)
	rec.RecordUpstreamAttempt(UpstreamIGDB, time.Millisecond, errors.New("bad"))
	rec.RecordTokenCacheHit()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rr.Body.String()
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, body, "upstream_attempts_total")
	assert.Contains(t, body, "upstream_errors_total")
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "token_cache_hits_total")
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry unavailable")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	assert.Error(t, err)
}

func TestSetupPropagatesOTLPErrors(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("collector unreachable")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"})
	assert.Error(t, err)
}
