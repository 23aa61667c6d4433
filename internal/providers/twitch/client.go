package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gamenexus/gamenexus/internal/providers"
)

// Config controls how the client reaches the credential service.
type Config struct {
	TokenURL   string
	HTTPClient *http.Client
}

// Client performs the client-credentials exchange. It makes exactly one
// attempt per call and never retries.
type Client struct {
	tokenURL   string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a credential exchange client.
func NewClient(cfg Config) *Client {
	return &Client{
		tokenURL:   normalizeTokenURL(cfg.TokenURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// Exchange obtains a fresh access token for creds.
func (c *Client) Exchange(ctx context.Context, creds providers.Credentials) (providers.AccessToken, error) {
	if err := creds.Validate(); err != nil {
		return providers.AccessToken{}, err
	}

	req, err := c.buildRequest(ctx, creds)
	if err != nil {
		return providers.AccessToken{}, &providers.UpstreamAuthError{Err: c.redact(err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.AccessToken{}, &providers.UpstreamAuthError{Err: c.redact(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return providers.AccessToken{}, &providers.UpstreamAuthError{
			StatusCode: resp.StatusCode,
			Message:    providers.ExtractMessage(body),
			Err:        fmt.Errorf("twitch: unexpected status %d", resp.StatusCode),
		}
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return providers.AccessToken{}, &providers.UpstreamAuthError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("twitch: decode token response: %w", err),
		}
	}
	if payload.AccessToken == "" {
		return providers.AccessToken{}, &providers.UpstreamAuthError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("twitch: %s", providers.MessageEmptyTokenBody),
		}
	}

	return providers.AccessToken{
		Value:      payload.AccessToken,
		ObtainedAt: c.now(),
		ExpiresIn:  time.Duration(payload.ExpiresIn) * time.Second,
	}, nil
}

// redact strips the query string, which carries the client secret, from
// any URL embedded in a transport error.
func (c *Client) redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redactedTokenURL(urlErr.URL)
	}
	return err
}

// buildRequest places the credentials in the query string, matching the
// credential service's documented client-credentials call.
func (c *Client) buildRequest(ctx context.Context, creds providers.Credentials) (*http.Request, error) {
	u, err := url.Parse(c.tokenURL)
	if err != nil {
		return nil, errors.New("twitch: invalid token url")
	}
	q := u.Query()
	q.Set("client_id", creds.ClientID)
	q.Set("client_secret", creds.ClientSecret)
	q.Set("grant_type", grantType)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
