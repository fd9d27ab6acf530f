// Package logging provides zerolog-based structured logging for stacksheet.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction. Format is "console" for
// human-readable output or "json" for machine ingestion.
type Config struct {
	Level      zerolog.Level
	Format     string
	TimeFormat string
}

// DefaultConfig returns the logging defaults: info level, console output.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New builds a logger writing to stderr with the given configuration.
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv builds a logger from STACKSHEET_LOG_LEVEL (trace, debug,
// info, warn, error) and STACKSHEET_LOG_FORMAT (json, console).
// Unrecognized values fall back to the defaults.
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if raw := os.Getenv("STACKSHEET_LOG_LEVEL"); raw != "" {
		if level, err := zerolog.ParseLevel(raw); err == nil && level != zerolog.NoLevel {
			cfg.Level = level
		}
	}

	switch format := os.Getenv("STACKSHEET_LOG_FORMAT"); format {
	case "json", "console":
		cfg.Format = format
	}

	return New(cfg)
}
