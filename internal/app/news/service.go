package news

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domainnews "github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/logging"
	"github.com/gamenexus/gamenexus/internal/metrics"
	"github.com/gamenexus/gamenexus/internal/providers"
)

// DefaultLimit is the number of headlines shown in the sidebar.
const DefaultLimit = 6

// Config wires a Service.
type Config struct {
	Fetcher providers.NewsFetcher
	Limit   int
	Timeout time.Duration
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	Tracer  trace.Tracer
}

// Service serves the news sidebar. It is best-effort: upstream failures
// are logged and yield an empty list.
type Service struct {
	fetcher providers.NewsFetcher
	limit   int
	timeout time.Duration
	logger  *slog.Logger
	metrics *metrics.Recorder
	tracer  trace.Tracer
	now     func() time.Time
}

// NewService constructs a news Service.
func NewService(cfg Config) *Service {
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer("github.com/gamenexus/gamenexus/internal/app/news")
	}
	return &Service{
		fetcher: cfg.Fetcher,
		limit:   limit,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		tracer:  tracer,
		now:     time.Now,
	}
}

// Latest returns at most limit items in feed order. It never returns nil.
func (s *Service) Latest(ctx context.Context) []domainnews.Item {
	if s.fetcher == nil {
		return []domainnews.Item{}
	}

	ctx, span := s.tracer.Start(ctx, "feed.fetch")
	defer span.End()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := s.now()
	items, err := s.fetcher.FetchNews(ctx)
	s.metrics.RecordUpstreamAttempt(metrics.UpstreamFeed, s.now().Sub(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "feed fetch failed")
		providers.LogUpstream(ctx, s.logger, slog.LevelWarn, metrics.UpstreamFeed, "news fetch failed",
			slog.Any(logging.FieldError, err))
		return []domainnews.Item{}
	}

	if len(items) > s.limit {
		items = items[:s.limit]
	}
	out := make([]domainnews.Item, len(items))
	copy(out, items)
	return out
}
