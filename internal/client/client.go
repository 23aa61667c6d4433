// Package client talks to the gamenexus HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gamenexus/gamenexus/internal/domain/games"
	"github.com/gamenexus/gamenexus/internal/domain/news"
	"github.com/gamenexus/gamenexus/internal/providers"
)

const (
	defaultBaseURL = "http://localhost:4000"
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10

	// MessageUnreachable is reported when the service cannot be reached.
	MessageUnreachable = "Could not reach the search service."
)

// APIError is a failed call to the service. Message is safe to show users.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// Config controls how the client reaches the service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client implements providers.GameSearcher and providers.NewsFetcher over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a Client.
func New(cfg Config) *Client {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: base, httpClient: httpClient}
}

var (
	_ providers.GameSearcher = (*Client)(nil)
	_ providers.NewsFetcher  = (*Client)(nil)
)

// Search posts query to /search.
func (c *Client) Search(ctx context.Context, query string) ([]games.GameResult, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("client: build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	results := []games.GameResult{}
	if err := c.do(req, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// FetchNews reads /news.
func (c *Client) FetchNews(ctx context.Context) ([]news.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/news", nil)
	if err != nil {
		return nil, fmt.Errorf("client: build news request: %w", err)
	}
	items := []news.Item{}
	if err := c.do(req, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) do(req *http.Request, dest any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: MessageUnreachable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
			Err:        fmt.Errorf("client: unexpected status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    providers.MessageFallback,
			Err:        fmt.Errorf("client: decode response: %w", err),
		}
	}
	return nil
}

func errorMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && strings.TrimSpace(envelope.Error) != "" {
		return strings.TrimSpace(envelope.Error)
	}
	return providers.MessageFallback
}
