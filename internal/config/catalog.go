package config

const (
	envTwitchClientID     = "TWITCH_CLIENT_ID"
	envTwitchClientSecret = "TWITCH_CLIENT_SECRET"
	envTwitchTokenURL     = "TWITCH_TOKEN_URL"
	envTokenCache         = "TOKEN_CACHE_ENABLED"
	envIGDBBaseURL        = "IGDB_BASE_URL"

	defaultTwitchTokenURL = "https://id.twitch.tv/oauth2/token"
	defaultIGDBBaseURL    = "https://api.igdb.com/v4"
)

// TwitchConfig controls the client-credentials exchange. ClientID and
// ClientSecret are secrets: never logged, never read from the config file.
type TwitchConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	TokenCache   bool
}

// IGDBConfig controls how the catalog is reached.
type IGDBConfig struct {
	BaseURL string
}

func loadTwitch(file fileConfig) TwitchConfig {
	return TwitchConfig{
		ClientID:     envOrDefault(envTwitchClientID, ""),
		ClientSecret: envOrDefault(envTwitchClientSecret, ""),
		TokenURL:     envOrDefault(envTwitchTokenURL, firstNonEmpty(file.Twitch.TokenURL, defaultTwitchTokenURL)),
		TokenCache:   boolEnvOrDefault(envTokenCache, file.Twitch.TokenCache),
	}
}

func loadIGDB(file fileConfig) IGDBConfig {
	return IGDBConfig{
		BaseURL: envOrDefault(envIGDBBaseURL, firstNonEmpty(file.IGDB.BaseURL, defaultIGDBBaseURL)),
	}
}
