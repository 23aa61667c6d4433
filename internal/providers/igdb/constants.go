package igdb

import "time"

const (
	defaultBaseURL     = "https://api.igdb.com/v4"
	gamesEndpoint      = "/games"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 4 << 10
)
