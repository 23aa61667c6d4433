package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/mmcdole/gofeed"

	"github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/logging"
	"github.com/gamenexus/gamenexus/internal/providers"
)

// Config controls which feed is read and how.
type Config struct {
	URL        string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches and normalizes a single RSS or Atom feed.
type Client struct {
	url        string
	httpClient httpDoer
	parser     *gofeed.Parser
	logger     *slog.Logger
}

// NewClient constructs a feed client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        normalizeFeedURL(cfg.URL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		parser:     gofeed.NewParser(),
		logger:     cfg.Logger,
	}
}

// FetchNews downloads the feed and maps its items in feed order. Items
// without a title or link are dropped.
func (c *Client) FetchNews(ctx context.Context) ([]news.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxFeedBody))
		return nil, fmt.Errorf("feed: unexpected status %d", resp.StatusCode)
	}

	parsed, err := c.parser.Parse(io.LimitReader(resp.Body, maxFeedBody))
	if err != nil {
		return nil, fmt.Errorf("feed: parse: %w", err)
	}

	items := mapItems(parsed.Items)
	if dropped := len(parsed.Items) - len(items); dropped > 0 {
		providers.LogUpstream(ctx, c.logger, slog.LevelDebug, upstreamName, "dropped feed items without title or link",
			slog.Int(logging.FieldSkipped, dropped),
		)
	}
	return items, nil
}
