package config

import "time"

const (
	envAPIURL        = "GAMENEXUS_API_URL"
	envClientTimeout = "CLIENT_TIMEOUT"
	envClientLogFile = "CLIENT_LOG_FILE"

	defaultAPIURL        = "http://localhost:4000"
	defaultClientTimeout = 15 * time.Second
)

// ClientConfig configures the terminal client. The screen belongs to the
// UI, so logs go to LogFile and are discarded when it is empty.
type ClientConfig struct {
	APIURL  string
	Timeout Duration
	Log     LogConfig
	LogFile string
}

// LoadClient reads the terminal client's configuration from the environment.
func LoadClient() ClientConfig {
	return ClientConfig{
		APIURL:  envOrDefault(envAPIURL, defaultAPIURL),
		Timeout: durationEnvOrDefault(envClientTimeout, defaultClientTimeout),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		LogFile: envOrDefault(envClientLogFile, ""),
	}
}
