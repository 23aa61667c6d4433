package logging

import (
	"context"
	"log/slog"
)

// Debug logs a debug message using the context logger when present.
func Debug(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if l := FromContext(ctx, logger); l != nil {
		l.DebugContext(ctx, msg, args...)
	}
}

// Info logs an info message using the context logger when present.
func Info(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if l := FromContext(ctx, logger); l != nil {
		l.InfoContext(ctx, msg, args...)
	}
}

// Warn logs a warning using the context logger when present.
func Warn(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	if l := FromContext(ctx, logger); l != nil {
		l.WarnContext(ctx, msg, args...)
	}
}

// Error logs an error using the context logger when present.
func Error(ctx context.Context, logger *slog.Logger, msg string, err error, args ...any) {
	l := FromContext(ctx, logger)
	if l == nil {
		return
	}
	if err != nil {
		args = append(args, FieldError, err)
	}
	l.ErrorContext(ctx, msg, args...)
}
