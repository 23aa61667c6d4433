package logging

import "log/slog"

// Log attribute keys. Credentials and tokens never get a key.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldUpstream   = "upstream"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldQuery      = "query"
	FieldGeneration = "generation"
	FieldError      = "error"
)

// serviceAttrs identifies the emitting binary on every record.
func serviceAttrs(service, version string) []slog.Attr {
	var attrs []slog.Attr
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
