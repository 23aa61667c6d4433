package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gamenexus/gamenexus/internal/http/middleware"
	"github.com/gamenexus/gamenexus/internal/http/requestutil"
	"github.com/gamenexus/gamenexus/internal/logging"
)

// errorResponse is the single error envelope every endpoint uses.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// writeJSON encodes payload after the status line. Responses carry live
// upstream data, so they are never cached.
func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorResponse{Error: message, RequestID: requestID(r)}, logger)
}

// requestID prefers the id assigned by the middleware over the raw header.
func requestID(r *http.Request) string {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get(requestutil.HeaderRequestID)
}

// decodeJSON reads at most limit bytes of JSON from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dest any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(dest)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
