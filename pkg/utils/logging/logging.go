package logging

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/m-mizutani/clog"
)

type ctxKey struct{}

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	handler := clog.New(
		clog.WithWriter(os.Stdout),
		clog.WithLevel(slog.LevelInfo),
		clog.WithColor(true),
	)
	defaultLogger.Store(slog.New(handler))
}

// Default returns the process-wide logger.
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
}

// With binds a logger to the context.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From returns the logger bound to the context, or the default logger.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return Default()
}
