// Package logging builds the slog loggers used across the application and
// carries the request id into log lines.
package logging

import (
	"context"
	"log/slog"
	"os"

	"verse-report/internal/handler/http/requestid"
)

// NewLogger returns a JSON logger. LOG_LEVEL=debug lowers the level;
// anything else logs at info. Source locations are attached at warn and
// below so error lines point at their call site.
func NewLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	}))
}

// NewTextLogger returns a human-readable logger for local development.
func NewTextLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// WithRequestID returns logger annotated with the context's request id,
// or logger unchanged when the context has none.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	id := requestid.FromContext(ctx)
	if id == "" {
		return logger
	}
	return logger.With("request_id", id)
}
