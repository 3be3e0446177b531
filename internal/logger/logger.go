package logger

import (
	"log/slog"
	"os"

	"github.com/oubliette-games/dungeon-escape/internal/config"
)

// Setup configures the global slog logger based on environment.
// Production environments get JSON output, everything else gets
// human-readable text.
func Setup(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
