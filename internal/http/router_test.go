package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/http/handlers"
	"github.com/gamenexus/gamenexus/internal/testutil"
)

func newTestRouter() http.Handler {
	searcher := &testutil.StubSearcher{Results: []games.GameResult{{ID: 1, Name: "Hades"}}}
	return NewRouter(handlers.NewHandler(searcher, nil, nil, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ready", "", http.StatusOK},
		{http.MethodGet, "/news", "", http.StatusOK},
		{http.MethodPost, "/search", `{"query":"hades"}`, http.StatusOK},
		{http.MethodGet, "/search", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
