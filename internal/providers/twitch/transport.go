package twitch

import (
	"net/http"
	"net/url"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeTokenURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return defaultTokenURL
	}
	return strings.TrimSpace(raw)
}

// redactedTokenURL drops the query and userinfo from raw.
func redactedTokenURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED]"
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}
