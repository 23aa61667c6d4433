package http

import (
	nethttp "net/http"

	"github.com/gamenexus/gamenexus/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/search", handler.Search)
	mux.HandleFunc("/news", handler.News)
	return mux
}
