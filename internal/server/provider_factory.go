package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"

	appsearch "github.com/gamenexus/gamenexus/internal/app/search"
	"github.com/gamenexus/gamenexus/internal/config"
	"github.com/gamenexus/gamenexus/internal/metrics"
	"github.com/gamenexus/gamenexus/internal/providers"
	"github.com/gamenexus/gamenexus/internal/providers/feed"
	"github.com/gamenexus/gamenexus/internal/providers/fixture"
	"github.com/gamenexus/gamenexus/internal/providers/igdb"
	"github.com/gamenexus/gamenexus/internal/providers/twitch"
)

const (
	providerIGDB    = "igdb"
	providerFixture = "fixture"
)

// errCatalogNotConfigured is reported by /ready when credentials are absent.
var errCatalogNotConfigured = errors.New("catalog credentials not configured")

// backends holds the upstream-facing components selected by configuration.
type backends struct {
	name     string
	searcher providers.GameSearcher
	news     providers.NewsFetcher
	readyFn  func() error
}

// providerFactory assembles the catalog and news providers with shared
// logging, metrics and tracing.
type providerFactory struct {
	logger     *slog.Logger
	metrics    *metrics.Recorder
	tracer     trace.Tracer
	httpClient *http.Client
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder, tracer trace.Tracer) providerFactory {
	return providerFactory{logger: logger, metrics: recorder, tracer: tracer}
}

// withHTTPClient routes every upstream call the factory builds through client.
func (f providerFactory) withHTTPClient(client *http.Client) providerFactory {
	f.httpClient = client
	return f
}

func (f providerFactory) build(cfg config.Config) backends {
	switch normalizeProviderName(cfg.CatalogProvider) {
	case providerFixture:
		p := fixture.New()
		return backends{name: providerFixture, searcher: p, news: p}
	case providerIGDB:
		return f.buildIGDB(cfg)
	default:
		if f.logger != nil {
			f.logger.Warn("unknown catalog provider, falling back to fixture", slog.String("provider", cfg.CatalogProvider))
		}
		p := fixture.New()
		return backends{name: providerFixture, searcher: p, news: p}
	}
}

func (f providerFactory) buildIGDB(cfg config.Config) backends {
	creds := providers.Credentials{
		ClientID:     cfg.Twitch.ClientID,
		ClientSecret: cfg.Twitch.ClientSecret,
	}

	var exchanger providers.TokenExchanger = twitch.NewClient(twitch.Config{
		TokenURL:   cfg.Twitch.TokenURL,
		HTTPClient: f.httpClient,
	})
	if cfg.Twitch.TokenCache {
		exchanger = twitch.NewCachingExchanger(exchanger, f.metrics)
	}

	gateway := appsearch.NewGateway(appsearch.Config{
		Credentials: creds,
		Exchanger:   exchanger,
		Catalog: igdb.NewClient(igdb.Config{
			BaseURL:    cfg.IGDB.BaseURL,
			HTTPClient: f.httpClient,
			Logger:     f.logger,
		}),
		Logger:  f.logger,
		Metrics: f.metrics,
		Tracer:  f.tracer,
		Timeout: cfg.UpstreamTimeout,
	})

	if err := creds.Validate(); err != nil && f.logger != nil {
		f.logger.Warn("catalog credentials missing; searches will fail until configured",
			slog.String("env", "TWITCH_CLIENT_ID, TWITCH_CLIENT_SECRET"))
	}

	return backends{
		name:     providerIGDB,
		searcher: gateway,
		news: feed.NewClient(feed.Config{
			URL:        cfg.News.FeedURL,
			HTTPClient: f.httpClient,
			Logger:     f.logger,
		}),
		readyFn: func() error {
			if creds.Validate() != nil {
				return errCatalogNotConfigured
			}
			return nil
		},
	}
}

// normalizeProviderName lower-cases the configured provider, defaulting to igdb.
func normalizeProviderName(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return providerIGDB
	}
	return raw
}
