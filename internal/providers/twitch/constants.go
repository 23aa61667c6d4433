package twitch

import "time"

const (
	defaultTokenURL    = "https://id.twitch.tv/oauth2/token"
	defaultHTTPTimeout = 10 * time.Second
	grantType          = "client_credentials"
	maxErrorBody       = 4 << 10
	// Cached tokens are refreshed this long before the upstream expiry.
	defaultExpiryMargin = time.Minute
)
