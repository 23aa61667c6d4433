package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/gamenexus/gamenexus/internal/config"
	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/metrics"
	"github.com/gamenexus/gamenexus/internal/providers"
	"github.com/gamenexus/gamenexus/internal/testutil"
	"github.com/gamenexus/gamenexus/internal/tracing"
)

// fakeUpstreams serves the credential service, the catalog and the news
// feed from one httptest server.
type fakeUpstreams struct {
	srv         *httptest.Server
	tokenCalls  atomic.Int32
	catalogHits atomic.Int32
	lastQuery   atomic.Value
}

func newFakeUpstreams(t *testing.T) *fakeUpstreams {
	t.Helper()
	f := &fakeUpstreams{}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		if r.URL.Query().Get("client_secret") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"status":403,"message":"invalid client secret"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-123","expires_in":3600,"token_type":"bearer"}`))
	})
	mux.HandleFunc("/v4/games", func(w http.ResponseWriter, r *http.Request) {
		f.catalogHits.Add(1)
		body, _ := io.ReadAll(r.Body)
		f.lastQuery.Store(string(body))
		if r.Header.Get("Authorization") != "Bearer tok-123" || r.Header.Get("Client-ID") != "client" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Authorization Failure"}`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":1877,"name":"Cyberpunk 2077","similar_games":[{"id":1942,"name":"The Witcher 3"}]}]`))
	})
	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<rss version="2.0"><channel><title>t</title>
<item><title>One</title><link>https://n.example.com/1</link></item>
</channel></rss>`))
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeUpstreams) config(clientID, secret string) config.Config {
	return config.Config{
		Port:            "0",
		CatalogProvider: "igdb",
		UpstreamTimeout: 2 * time.Second,
		Twitch: config.TwitchConfig{
			ClientID:     clientID,
			ClientSecret: secret,
			TokenURL:     f.srv.URL + "/oauth2/token",
		},
		IGDB: config.IGDBConfig{BaseURL: f.srv.URL + "/v4"},
		News: config.NewsConfig{FeedURL: f.srv.URL + "/feed", Limit: 6},
	}
}

func postSearch(t *testing.T, h http.Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.PostJSON(t, h, "/search", map[string]string{"query": query})
}

func TestServerSearchesThroughCatalog(t *testing.T) {
	up := newFakeUpstreams(t)
	srv := New(up.config("client", "secret"), nil)

	rr := postSearch(t, srv.Handler(), "Cyberpunk 2077")
	testutil.AssertStatus(t, rr, http.StatusOK)

	var results []games.GameResult
	testutil.DecodeJSON(t, rr, &results)
	require.Len(t, results, 1)
	assert.Equal(t, "Cyberpunk 2077", results[0].Name)
	assert.Equal(t, "The Witcher 3", results[0].SimilarGames[0].Name)
	assert.Contains(t, up.lastQuery.Load().(string), `search "Cyberpunk 2077";`)

	assert.Equal(t, 1, srv.metrics.UpstreamCalls(metrics.UpstreamTwitch))
	assert.Equal(t, 1, srv.metrics.UpstreamCalls(metrics.UpstreamIGDB))
}

func TestServerAuthenticatesEverySearchByDefault(t *testing.T) {
	up := newFakeUpstreams(t)
	srv := New(up.config("client", "secret"), nil)

	postSearch(t, srv.Handler(), "Hades")
	postSearch(t, srv.Handler(), "Hades")
	assert.EqualValues(t, 2, up.tokenCalls.Load())
}

func TestServerTokenCacheReusesToken(t *testing.T) {
	up := newFakeUpstreams(t)
	cfg := up.config("client", "secret")
	cfg.Twitch.TokenCache = true
	srv := New(cfg, nil)

	postSearch(t, srv.Handler(), "Hades")
	postSearch(t, srv.Handler(), "Hades")
	assert.EqualValues(t, 1, up.tokenCalls.Load())
	assert.EqualValues(t, 2, up.catalogHits.Load())
	assert.Equal(t, 1, srv.metrics.TokenCacheHits())
}

func TestServerMissingCredentialsFailsWithoutOutboundCalls(t *testing.T) {
	up := newFakeUpstreams(t)
	srv := New(up.config("", ""), nil)

	rr := postSearch(t, srv.Handler(), "Hades")
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, providers.MessageMissingKeys, body["error"])
	assert.NotEmpty(t, body["requestId"])

	assert.Zero(t, up.tokenCalls.Load())
	assert.Zero(t, up.catalogHits.Load())

	ready := testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, ready, http.StatusServiceUnavailable)
}

func TestServerAuthFailureSurfacesUpstreamMessage(t *testing.T) {
	up := newFakeUpstreams(t)
	srv := New(up.config("client", "wrong"), nil)

	rr := postSearch(t, srv.Handler(), "Hades")
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, "invalid client secret", body["error"])
	assert.Zero(t, up.catalogHits.Load())
}

func TestServerServesNewsAndHealth(t *testing.T) {
	up := newFakeUpstreams(t)
	srv := New(up.config("client", "secret"), nil)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/news", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var items []news.Item
	testutil.DecodeJSON(t, rr, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "One", items[0].Title)

	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/ready", nil), http.StatusOK)
}

func TestServerNewsFailureIsEmptyList(t *testing.T) {
	up := newFakeUpstreams(t)
	cfg := up.config("client", "secret")
	cfg.News.FeedURL = up.srv.URL + "/missing"
	srv := New(cfg, nil)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/news", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestServerFixtureProviderNeedsNoCredentials(t *testing.T) {
	srv := New(config.Config{CatalogProvider: "fixture", News: config.NewsConfig{Limit: 2}}, nil)

	rr := postSearch(t, srv.Handler(), "witcher")
	testutil.AssertStatus(t, rr, http.StatusOK)
	var results []games.GameResult
	testutil.DecodeJSON(t, rr, &results)
	require.Len(t, results, 1)

	newsRR := testutil.Serve(srv.Handler(), http.MethodGet, "/news", nil)
	var items []news.Item
	testutil.DecodeJSON(t, newsRR, &items)
	assert.Len(t, items, 2)
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	stub := &testutil.StubTelemetry{Err: errors.New("fail")}
	metricsSetup = stub.Setup

	srv := newServerWithMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}, CatalogProvider: "fixture"}, nil, nil)
	assert.Equal(t, 1, stub.Calls())
	assert.NotNil(t, srv.metrics, "expected fallback metrics recorder even on setup failure")
	assert.Nil(t, srv.metricsServer)
}

func TestNewServerWithMetricsEnabledMountsMetricsServer(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	stub := &testutil.StubTelemetry{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})}
	metricsSetup = stub.Setup

	cfg := config.Config{
		CatalogProvider: "fixture",
		Metrics:         config.MetricsConfig{Enabled: true, Port: "9999", ServiceName: "gamenexus-test"},
	}
	srv := newServerWithMetrics(cfg, nil, nil)
	require.NotNil(t, srv.metricsServer)
	assert.Equal(t, ":9999", srv.metricsServer.Addr())
	assert.Equal(t, "gamenexus-test", stub.Config().ServiceName)

	rr := testutil.Serve(srv.metricsServer.Handler(), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, "# metrics", rr.Body.String())

	srv.gracefulShutdown()
	assert.True(t, stub.Stopped(), "meter provider should be shut down with the server")
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	stub := &testutil.StubTelemetry{}
	metricsSetup = stub.Setup

	rec := metrics.NewRecorder()
	srv := newServerWithMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}, CatalogProvider: "fixture"}, nil, rec)
	assert.Same(t, rec, srv.metrics)
	assert.Nil(t, srv.metricsStop)
	assert.Zero(t, stub.Calls())

	testutil.AssertStatus(t, postSearch(t, srv.Handler(), "hades"), http.StatusOK)
}

func TestNewServerToleratesTracingFailure(t *testing.T) {
	orig := tracingSetup
	defer func() { tracingSetup = orig }()

	tracingSetup = func(ctx context.Context, cfg tracing.Config) (trace.Tracer, func(context.Context) error, error) {
		return nil, nil, errors.New("collector unreachable")
	}

	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithMetrics(config.Config{CatalogProvider: "fixture", Tracing: config.TracingConfig{Enabled: true}}, logger, nil)
	assert.Nil(t, srv.tracingStop)
	assert.Contains(t, buf.String(), "tracing setup failed")

	rr := postSearch(t, srv.Handler(), "hades")
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	stub := &testutil.FakeHTTPServer{ListenErr: http.ErrServerClosed}
	srv := newServerWithDeps(config.Config{}, nil, stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	srv.Run(ctx, nil)

	assert.Equal(t, 1, stub.Shutdowns())
}

func TestRunStopsWhenServerFails(t *testing.T) {
	errSrv := &testutil.FakeHTTPServer{ListenErr: errors.New("listen failure")}
	srv := newServerWithDeps(config.Config{}, nil, errSrv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after listen failure")
	}
	assert.Equal(t, 1, errSrv.Listens())
	assert.Equal(t, 1, errSrv.Shutdowns())
}

func TestGracefulShutdownLogsTimeout(t *testing.T) {
	orig := shutdownTimeout
	shutdownTimeout = 10 * time.Millisecond
	defer func() { shutdownTimeout = orig }()

	blocking := &testutil.FakeHTTPServer{Release: make(chan struct{})}
	logger, buf := testutil.NewBufferLogger()
	srv := newServerWithDeps(config.Config{}, logger, blocking)

	srv.gracefulShutdown()
	assert.Equal(t, 1, blocking.Shutdowns())
	assert.Contains(t, buf.String(), "graceful shutdown failed")
}

func TestWriteTimeoutCoversTwoUpstreamCalls(t *testing.T) {
	assert.Equal(t, 25*time.Second, writeTimeout(10*time.Second))
	assert.Equal(t, 30*time.Second, writeTimeout(0))
}
