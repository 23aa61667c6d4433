package testutil

import (
	"context"
	"net/http"
	"sync"
)

// FakeHTTPServer stands in for the server's listener. ListenAndServe returns
// ListenErr immediately. When Release is non-nil, Shutdown waits for it to
// close or for the context to expire.
type FakeHTTPServer struct {
	ListenErr   error
	ShutdownErr error
	Release     chan struct{}
	Mux         http.Handler

	mu        sync.Mutex
	listens   int
	shutdowns int
}

func (f *FakeHTTPServer) ListenAndServe() error {
	f.mu.Lock()
	f.listens++
	f.mu.Unlock()
	return f.ListenErr
}

func (f *FakeHTTPServer) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	f.shutdowns++
	f.mu.Unlock()

	if f.Release != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-f.Release:
		}
	}
	return f.ShutdownErr
}

func (f *FakeHTTPServer) Addr() string { return ":0" }

func (f *FakeHTTPServer) Handler() http.Handler {
	if f.Mux == nil {
		return http.NotFoundHandler()
	}
	return f.Mux
}

// Listens reports how many times ListenAndServe ran.
func (f *FakeHTTPServer) Listens() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listens
}

// Shutdowns reports how many times Shutdown ran.
func (f *FakeHTTPServer) Shutdowns() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shutdowns
}
