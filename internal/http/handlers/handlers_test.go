package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/providers"
	"github.com/gamenexus/gamenexus/internal/testutil"
)

type stubNews struct{ items []news.Item }

func (s stubNews) Latest(context.Context) []news.Item { return s.items }

func newTestHandler(searcher providers.GameSearcher) *Handler {
	return NewHandler(searcher, stubNews{}, nil, nil)
}

func TestHealth(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(newTestHandler(nil).Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "ok", resp["status"])
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(newTestHandler(nil).Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "shutting down", resp["error"])
}

func TestReady(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(newTestHandler(nil).Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	notReady := NewHandler(nil, nil, nil, func() error { return errors.New("catalog not configured") })
	rr = testutil.Serve(http.HandlerFunc(notReady.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "catalog not configured", resp["error"])
}

func TestSearchReturnsResults(t *testing.T) {
	searcher := &testutil.StubSearcher{Results: []games.GameResult{
		{ID: 1877, Name: "Cyberpunk 2077", SimilarGames: []games.SimilarGame{{ID: 1942, Name: "The Witcher 3"}}},
	}}

	rr := testutil.Serve(http.HandlerFunc(newTestHandler(searcher).Search), http.MethodPost, "/search",
		strings.NewReader(`{"query":"Cyberpunk 2077"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp []games.GameResult
	testutil.DecodeJSON(t, rr, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "Cyberpunk 2077", resp[0].Name)
	assert.Equal(t, "The Witcher 3", resp[0].SimilarGames[0].Name)
	assert.Equal(t, []string{"Cyberpunk 2077"}, searcher.Queries())
}

func TestSearchEmptyQueryIsNoOp(t *testing.T) {
	searcher := &testutil.StubSearcher{}
	h := newTestHandler(searcher)

	for _, body := range []string{`{"query":""}`, `{"query":"   "}`, `{}`} {
		rr := testutil.Serve(http.HandlerFunc(h.Search), http.MethodPost, "/search", strings.NewReader(body))
		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.JSONEq(t, `[]`, rr.Body.String())
	}
	assert.Empty(t, searcher.Queries())
}

func TestSearchNilResultsEncodeAsEmptyArray(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(newTestHandler(&testutil.StubSearcher{}).Search), http.MethodPost, "/search",
		strings.NewReader(`{"query":"nothing"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestSearchErrorsMapTo500WithMessage(t *testing.T) {
	cases := map[string]struct {
		err  error
		want string
	}{
		"missing config": {
			err:  &providers.ConfigurationError{Missing: []string{"client id"}},
			want: providers.MessageMissingKeys,
		},
		"auth with message": {
			err:  &providers.UpstreamAuthError{StatusCode: 400, Message: "invalid client"},
			want: "invalid client",
		},
		"auth without message": {
			err:  &providers.UpstreamAuthError{Err: errors.New("dial")},
			want: providers.MessageAuthFallback,
		},
		"query with message": {
			err:  &providers.UpstreamQueryError{StatusCode: 400, Message: "malformed query"},
			want: "malformed query",
		},
		"query without message": {
			err:  &providers.UpstreamQueryError{StatusCode: 500},
			want: providers.MessageFallback,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			h := newTestHandler(&testutil.StubSearcher{Err: tc.err})
			req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"Hades"}`))
			req.Header.Set("X-Request-ID", "req-1")

			rr := testutil.ServeRequest(http.HandlerFunc(h.Search), req)
			testutil.AssertStatus(t, rr, http.StatusInternalServerError)

			var resp map[string]string
			testutil.DecodeJSON(t, rr, &resp)
			assert.Equal(t, tc.want, resp["error"])
			assert.Equal(t, "req-1", resp["requestId"])
		})
	}
}

func TestSearchEmptyQueryErrorFromGatewayIsNoOp(t *testing.T) {
	h := newTestHandler(&testutil.StubSearcher{Err: providers.ErrEmptyQuery})
	rr := testutil.Serve(http.HandlerFunc(h.Search), http.MethodPost, "/search", strings.NewReader(`{"query":"x"}`))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestSearchRejectsMalformedBody(t *testing.T) {
	h := newTestHandler(&testutil.StubSearcher{})
	for _, body := range []string{`not json`, `{"query": 42}`, ``} {
		rr := testutil.Serve(http.HandlerFunc(h.Search), http.MethodPost, "/search", strings.NewReader(body))
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestSearchRejectsOversizedBody(t *testing.T) {
	h := newTestHandler(&testutil.StubSearcher{})
	body := `{"query":"` + strings.Repeat("a", maxSearchBody) + `"}`
	rr := testutil.Serve(http.HandlerFunc(h.Search), http.MethodPost, "/search", strings.NewReader(body))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestSearchRequiresPost(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(newTestHandler(&testutil.StubSearcher{}).Search), http.MethodGet, "/search", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestNewsReturnsItems(t *testing.T) {
	items := []news.Item{{Title: "One", Link: "https://example.com/1", Snippet: "s"}}
	h := NewHandler(nil, stubNews{items: items}, nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.News), http.MethodGet, "/news", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp []news.Item
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, items, resp)
}

func TestNewsWithoutServiceIsEmpty(t *testing.T) {
	h := NewHandler(nil, nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.News), http.MethodGet, "/news", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = testutil.Serve(http.HandlerFunc(h.News), http.MethodPost, "/news", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
