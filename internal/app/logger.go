package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/captionkit-backend/internal/config"
)

// NewLogger creates a *slog.Logger on os.Stderr based on the provided
// LogConfig and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with source info (development).
// Level is one of: debug, info, warn (or warning), error (case-insensitive);
// defaults to info. Every record carries the build version plus attrs, which
// commands use to tag their output.
func NewLogger(cfg config.LogConfig, attrs ...slog.Attr) *slog.Logger {
	logger := newLogger(os.Stderr, cfg, attrs...)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig, attrs ...slog.Attr) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	handler = handler.WithAttrs(append([]slog.Attr{slog.String("version", Version)}, attrs...))
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
