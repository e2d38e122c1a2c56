// Package logging carries the SDK's slog logger through contexts.
// Host applications install their own logger with WithLogger; every
// SDK component falls back to slog.Default otherwise, so the library
// never logs through a handler the application didn't choose.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type ctxKey struct{}

// New builds a logger writing to w: a text handler in development, JSON
// everywhere else.
func New(w io.Writer, level, appEnv string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if appEnv == "development" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Init builds a logger tagged with the component name and installs it
// as the process default. Meant for binaries, not for library code.
func Init(component, level, appEnv string) *slog.Logger {
	logger := New(os.Stdout, level, appEnv).With("service", component)
	slog.SetDefault(logger)
	return logger
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
