package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a logger writing to w based on the configuration.
// Unknown levels fall back to info.
func NewLogger(cfg LoggerConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
