package twitch

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/gamenexus/gamenexus/internal/metrics"
	"github.com/gamenexus/gamenexus/internal/providers"
)

// CachingExchanger reuses a token until shortly before it expires.
// Concurrent misses for the same client id share one upstream exchange.
type CachingExchanger struct {
	inner   providers.TokenExchanger
	metrics *metrics.Recorder
	margin  time.Duration
	now     func() time.Time
	// flightTimeout bounds a shared exchange independently of its callers.
	flightTimeout time.Duration

	group  singleflight.Group
	mu     sync.Mutex
	tokens map[string]providers.AccessToken
}

// NewCachingExchanger wraps inner with an expiry-aware token cache.
func NewCachingExchanger(inner providers.TokenExchanger, recorder *metrics.Recorder) *CachingExchanger {
	return &CachingExchanger{
		inner:   inner,
		metrics: recorder,
		margin:  defaultExpiryMargin,
		now:     time.Now,
		tokens:  make(map[string]providers.AccessToken),

		flightTimeout: defaultHTTPTimeout,
	}
}

// Exchange returns a cached token when still valid, otherwise fetches one.
func (c *CachingExchanger) Exchange(ctx context.Context, creds providers.Credentials) (providers.AccessToken, error) {
	if err := creds.Validate(); err != nil {
		return providers.AccessToken{}, err
	}
	if token, ok := c.cached(creds.ClientID); ok {
		c.metrics.RecordTokenCacheHit()
		return token, nil
	}

	// The shared exchange outlives any single caller; each caller stops
	// waiting when its own context ends.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(creds.ClientID, func() (any, error) {
		if token, ok := c.cached(creds.ClientID); ok {
			return token, nil
		}
		fctx, cancel := context.WithTimeout(flightCtx, c.flightTimeout)
		defer cancel()
		token, err := c.inner.Exchange(fctx, creds)
		if err != nil {
			return providers.AccessToken{}, err
		}
		c.store(creds.ClientID, token)
		return token, nil
	})

	select {
	case <-ctx.Done():
		return providers.AccessToken{}, &providers.UpstreamAuthError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return providers.AccessToken{}, res.Err
		}
		return res.Val.(providers.AccessToken), nil
	}
}

// Invalidate drops the cached token for clientID, e.g. after the catalog
// rejects it.
func (c *CachingExchanger) Invalidate(clientID string) {
	c.mu.Lock()
	delete(c.tokens, clientID)
	c.mu.Unlock()
}

func (c *CachingExchanger) cached(clientID string) (providers.AccessToken, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	token, ok := c.tokens[clientID]
	if !ok || !token.Valid(c.now(), c.margin) {
		return providers.AccessToken{}, false
	}
	return token, true
}

func (c *CachingExchanger) store(clientID string, token providers.AccessToken) {
	if !token.Valid(c.now(), c.margin) {
		return
	}
	c.mu.Lock()
	c.tokens[clientID] = token
	c.mu.Unlock()
}
