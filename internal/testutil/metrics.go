package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/gamenexus/gamenexus/internal/metrics"
)

// StubTelemetry stands in for metrics.Setup. Setup hands back Recorder and
// Handler, or Err; the returned shutdown func marks the stub stopped.
type StubTelemetry struct {
	Recorder *metrics.Recorder
	Handler  http.Handler
	Err      error

	mu      sync.Mutex
	calls   int
	stopped bool
	cfg     metrics.TelemetryConfig
}

func (s *StubTelemetry) Setup(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
	_ = ctx
	s.mu.Lock()
	s.calls++
	s.cfg = cfg
	s.mu.Unlock()

	if s.Err != nil {
		return nil, nil, nil, s.Err
	}
	rec := s.Recorder
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	stop := func(context.Context) error {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		return nil
	}
	return rec, s.Handler, stop, nil
}

// Calls reports how many times Setup ran.
func (s *StubTelemetry) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Stopped reports whether the shutdown func returned by Setup was called.
func (s *StubTelemetry) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// Config returns the configuration passed to the last Setup call.
func (s *StubTelemetry) Config() metrics.TelemetryConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}
