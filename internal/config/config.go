package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	CatalogProvider string
	UpstreamTimeout Duration
	Twitch          TwitchConfig
	IGDB            IGDBConfig
	News            NewsConfig
	Metrics         MetricsConfig
	Tracing         TracingConfig
	Log             LogConfig
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment values win over the file; secrets are only ever
// taken from the environment.
func Load() (Config, error) {
	file, err := loadFile(envOrDefault(envConfigFile, ""))
	if err != nil {
		return Config{}, err
	}
	return Config{
		Port:            envOrDefault(envPort, firstNonEmpty(file.Port, defaultPort)),
		CatalogProvider: envOrDefault(envCatalogProvider, firstNonEmpty(file.CatalogProvider, defaultCatalogProvider)),
		UpstreamTimeout: durationEnvOrDefault(envUpstreamTimeout, fileDuration(file.UpstreamTimeout, defaultUpstreamTimeout)),
		Twitch:          loadTwitch(file),
		IGDB:            loadIGDB(file),
		News:            loadNews(file),
		Metrics:         loadMetrics(file),
		Tracing:         loadTracing(file),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, firstNonEmpty(file.Log.Level, defaultLogLevel)),
			Format: envOrDefault(envLogFormat, firstNonEmpty(file.Log.Format, defaultLogFormat)),
		},
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
