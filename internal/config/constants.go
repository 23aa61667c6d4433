package config

import "time"

const (
	envConfigFile      = "GAMENEXUS_CONFIG"
	envPort            = "PORT"
	envCatalogProvider = "CATALOG_PROVIDER"
	envUpstreamTimeout = "UPSTREAM_TIMEOUT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelMetricsURL  = "OTEL_EXPORTER_OTLP_METRICS_ENDPOINT"
	envOtelTracesURL   = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envTracingOn       = "TRACING_ENABLED"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	defaultPort            = "4000"
	defaultCatalogProvider = "igdb"
	// Applied to each outbound call separately.
	defaultUpstreamTimeout = 10 * Duration(time.Second)
	defaultMetricsPort     = "9090"
	defaultServiceName     = "gamenexus"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)
