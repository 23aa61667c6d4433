package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/logging"
	"github.com/gamenexus/gamenexus/internal/providers"
)

// Config controls how the client reaches the catalog.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client posts query expressions to the catalog's games endpoint.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a catalog client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// QueryGames sends query and returns the decoded results in catalog order.
// Any failure is reported as a *providers.UpstreamQueryError.
func (c *Client) QueryGames(ctx context.Context, clientID string, token providers.AccessToken, query string) ([]games.GameResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+gamesEndpoint, strings.NewReader(query))
	if err != nil {
		return nil, &providers.UpstreamQueryError{Err: err}
	}
	req.Header.Set("Client-ID", clientID)
	req.Header.Set("Authorization", "Bearer "+token.Value)
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.UpstreamQueryError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.UpstreamQueryError{
			StatusCode: resp.StatusCode,
			Message:    providers.ExtractMessage(body),
			Err:        fmt.Errorf("igdb: unexpected status %d", resp.StatusCode),
		}
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &providers.UpstreamQueryError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("igdb: decode response: %w", err),
		}
	}

	results, skipped := mapGames(raw)
	if skipped > 0 {
		providers.LogUpstream(ctx, c.logger, slog.LevelWarn, upstreamName, "dropped malformed catalog entries",
			slog.Int(logging.FieldSkipped, skipped),
			slog.Int(logging.FieldCount, len(results)),
		)
	}
	return results, nil
}
