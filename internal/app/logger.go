package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/tasktime-backend/internal/config"
)

// NewLogger builds the application *slog.Logger from LogConfig and
// installs it as the process default.
//
// Format "json" is the production output; anything else falls back to
// the text handler with source locations, which is what we want during
// development. Output always goes to os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLevel(cfg.Level),
		})
	default:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     parseLevel(cfg.Level),
			AddSource: true,
		})
	}

	logger := slog.New(handler).With(slog.String("app", "tasktime"))
	slog.SetDefault(logger)

	return logger
}

// parseLevel maps a config string to a slog.Level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
