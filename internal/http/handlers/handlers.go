package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/logging"
	"github.com/gamenexus/gamenexus/internal/providers"
)

// maxSearchBody caps the size of a /search request body.
const maxSearchBody = 16 << 10

// NewsLister returns the current sidebar headlines. It never fails.
type NewsLister interface {
	Latest(ctx context.Context) []news.Item
}

// Handler wires HTTP routes to the search gateway and news service.
type Handler struct {
	search  providers.GameSearcher
	news    NewsLister
	logger  *slog.Logger
	readyFn func() error
}

// NewHandler constructs a Handler. readyFn may be nil, meaning always ready.
func NewHandler(search providers.GameSearcher, newsSvc NewsLister, logger *slog.Logger, readyFn func() error) *Handler {
	return &Handler{
		search:  search,
		news:    newsSvc,
		logger:  logger,
		readyFn: readyFn,
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes readiness checks).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.readyFn != nil {
		if err := h.readyFn(); err != nil {
			writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Search resolves {"query": "..."} into catalog results. Every gateway
// failure maps to 500 with a human-readable message.
func (h *Handler) Search(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	var req searchRequest
	if err := decodeJSON(w, r, maxSearchBody, &req); err != nil {
		logging.Warn(r.Context(), logger, "rejected search body", slog.Any(logging.FieldError, err))
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if strings.TrimSpace(req.Query) == "" || h.search == nil {
		writeJSON(w, nethttp.StatusOK, []games.GameResult{}, h.logger)
		return
	}

	results, err := h.search.Search(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, providers.ErrEmptyQuery) {
			writeJSON(w, nethttp.StatusOK, []games.GameResult{}, h.logger)
			return
		}
		logging.Error(r.Context(), logger, "search failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, providers.PublicMessage(err), h.logger)
		return
	}
	if results == nil {
		results = []games.GameResult{}
	}
	logging.Debug(r.Context(), logger, "served search results", slog.Int(logging.FieldCount, len(results)))
	writeJSON(w, nethttp.StatusOK, results, h.logger)
}

// News returns the trimmed news feed; failures yield an empty list.
func (h *Handler) News(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	items := []news.Item{}
	if h.news != nil {
		items = h.news.Latest(r.Context())
	}
	writeJSON(w, nethttp.StatusOK, items, h.logger)
}
