package providers

import (
	"context"
	"log/slog"

	"github.com/gamenexus/gamenexus/internal/logging"
)

// LogUpstream emits a log entry tagged with the upstream name, preferring the
// request-scoped logger carried on ctx.
func LogUpstream(ctx context.Context, logger *slog.Logger, level slog.Level, upstream string, msg string, args ...any) {
	l := logging.FromContext(ctx, logger)
	if l == nil {
		return
	}
	args = append(args, slog.String(logging.FieldUpstream, upstream))
	l.Log(ctx, level, msg, args...)
}
