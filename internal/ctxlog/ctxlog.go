// Package ctxlog carries the session's *slog.Logger through context.Context,
// so library packages log into the handler the driver configured.
package ctxlog

import (
	"context"
	"log/slog"
)

// loggerKey is the context key for the logger. The unexported type keeps it
// private to this package.
type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger. A nil ctx is treated as
// context.Background().
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default() when ctx is
// nil or carries no logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return slog.Default()
}
