package config

const (
	envNewsFeedURL = "NEWS_FEED_URL"
	envNewsLimit   = "NEWS_LIMIT"

	defaultNewsFeedURL = "https://www.gamespot.com/feeds/news/"
	defaultNewsLimit   = 6
)

// NewsConfig controls the syndication feed proxied by /news.
type NewsConfig struct {
	FeedURL string
	Limit   int
}

func loadNews(file fileConfig) NewsConfig {
	limit := defaultNewsLimit
	if file.News.Limit > 0 {
		limit = file.News.Limit
	}
	return NewsConfig{
		FeedURL: envOrDefault(envNewsFeedURL, firstNonEmpty(file.News.FeedURL, defaultNewsFeedURL)),
		Limit:   intEnvOrDefault(envNewsLimit, limit),
	}
}
