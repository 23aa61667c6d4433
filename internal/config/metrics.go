package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

// TracingConfig controls span export.
type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
	Insecure    bool
}

func loadMetrics(file fileConfig) MetricsConfig {
	enabled := true
	if file.Metrics.Enabled != nil {
		enabled = *file.Metrics.Enabled
	}
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, enabled),
		Port:         envOrDefault(envMetricsPort, firstNonEmpty(file.Metrics.Port, defaultMetricsPort)),
		OtlpEndpoint: otlpEndpoint(envOtelMetricsURL),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

func loadTracing(file fileConfig) TracingConfig {
	return TracingConfig{
		Enabled:     boolEnvOrDefault(envTracingOn, file.Tracing.Enabled),
		Endpoint:    otlpEndpoint(envOtelTracesURL),
		ServiceName: envOrDefault(envOtelService, defaultServiceName),
		Insecure:    boolEnvOrDefault(envOtelInsecure, true),
	}
}

// otlpEndpoint prefers the signal-specific key over the shared one.
func otlpEndpoint(signalKey string) string {
	return envOrDefault(signalKey, envOrDefault(envOtelEndpoint, ""))
}
