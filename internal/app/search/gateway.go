package search

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/logging"
	"github.com/gamenexus/gamenexus/internal/metrics"
	"github.com/gamenexus/gamenexus/internal/providers"
	"github.com/gamenexus/gamenexus/internal/providers/igdb"
)

const tracerName = "github.com/gamenexus/gamenexus/internal/app/search"

// tokenInvalidator is implemented by exchangers that cache tokens.
type tokenInvalidator interface {
	Invalidate(clientID string)
}

// Config wires a Gateway. Credentials are injected here so the gateway never
// reads process configuration itself.
type Config struct {
	Credentials providers.Credentials
	Exchanger   providers.TokenExchanger
	Catalog     providers.CatalogQuerier
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	Tracer      trace.Tracer
	// Timeout bounds each upstream call. Zero disables the bound.
	Timeout time.Duration
}

// Gateway turns a free-text query into an authenticated catalog lookup.
// It holds no per-request state and is safe for concurrent use.
type Gateway struct {
	creds     providers.Credentials
	exchanger providers.TokenExchanger
	catalog   providers.CatalogQuerier
	logger    *slog.Logger
	metrics   *metrics.Recorder
	tracer    trace.Tracer
	timeout   time.Duration
	now       func() time.Time
}

// NewGateway constructs a Gateway.
func NewGateway(cfg Config) *Gateway {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return &Gateway{
		creds:     cfg.Credentials,
		exchanger: cfg.Exchanger,
		catalog:   cfg.Catalog,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		tracer:    tracer,
		timeout:   cfg.Timeout,
		now:       time.Now,
	}
}

// Search authenticates, builds the catalog query and returns at most
// games.MaxResults results in catalog order.
//
// A blank query returns providers.ErrEmptyQuery without any I/O. Missing
// credentials return *providers.ConfigurationError before any outbound call.
// Upstream failures surface as *providers.UpstreamAuthError or
// *providers.UpstreamQueryError.
func (g *Gateway) Search(ctx context.Context, query string) ([]games.GameResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, providers.ErrEmptyQuery
	}

	ctx, span := g.tracer.Start(ctx, "search.gateway")
	defer span.End()

	if err := g.creds.Validate(); err != nil {
		logging.Error(ctx, g.logger, "search rejected: catalog credentials not configured", err)
		recordSpanError(span, err)
		return nil, err
	}

	logging.Debug(ctx, g.logger, "search started", slog.String(logging.FieldQuery, query))

	token, err := g.exchange(ctx)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	results, err := g.query(ctx, token, igdb.BuildQuery(query))
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	if len(results) > games.MaxResults {
		results = results[:games.MaxResults]
	}
	span.SetAttributes(attribute.Int("search.results", len(results)))
	logging.Info(ctx, g.logger, "search completed", slog.Int(logging.FieldCount, len(results)))
	return results, nil
}

func (g *Gateway) exchange(ctx context.Context) (providers.AccessToken, error) {
	ctx, span := g.tracer.Start(ctx, "twitch.token")
	defer span.End()

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := g.now()
	token, err := g.exchanger.Exchange(ctx, g.creds)
	g.metrics.RecordUpstreamAttempt(metrics.UpstreamTwitch, g.now().Sub(start), err)
	if err != nil {
		if _, ok := providers.AsAuthError(err); !ok && !providers.IsConfigurationError(err) {
			err = &providers.UpstreamAuthError{Err: err}
		}
		providers.LogUpstream(ctx, g.logger, slog.LevelError, metrics.UpstreamTwitch, "credential exchange failed",
			slog.Any(logging.FieldError, err))
		recordSpanError(span, err)
		return providers.AccessToken{}, err
	}
	return token, nil
}

func (g *Gateway) query(ctx context.Context, token providers.AccessToken, q string) ([]games.GameResult, error) {
	ctx, span := g.tracer.Start(ctx, "igdb.query")
	defer span.End()

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	start := g.now()
	results, err := g.catalog.QueryGames(ctx, g.creds.ClientID, token, q)
	g.metrics.RecordUpstreamAttempt(metrics.UpstreamIGDB, g.now().Sub(start), err)
	if err != nil {
		queryErr, ok := providers.AsQueryError(err)
		if !ok {
			queryErr = &providers.UpstreamQueryError{Err: err}
			err = queryErr
		}
		if queryErr.StatusCode == http.StatusUnauthorized || queryErr.StatusCode == http.StatusForbidden {
			if inv, ok := g.exchanger.(tokenInvalidator); ok {
				inv.Invalidate(g.creds.ClientID)
			}
		}
		providers.LogUpstream(ctx, g.logger, slog.LevelError, metrics.UpstreamIGDB, "catalog query failed",
			slog.Int(logging.FieldStatusCode, queryErr.StatusCode),
			slog.Any(logging.FieldError, err))
		recordSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("igdb.results", len(results)))
	if results == nil {
		results = []games.GameResult{}
	}
	return results, nil
}

func (g *Gateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, providers.PublicMessage(err))
}
