package feed

import "time"

const (
	upstreamName       = "feed"
	defaultFeedURL     = "https://www.gamespot.com/feeds/news/"
	defaultHTTPTimeout = 10 * time.Second
	maxSnippetRunes    = 300
	maxFeedBody        = 4 << 20
	userAgent          = "gamenexus-news/1.0"
)
