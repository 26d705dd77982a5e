package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/polkiloo/givebox/internal/config"
)

const developmentEnv = "development"

// New creates a zerolog.Logger writing JSON to stdout, or human readable
// output when running in development.
func New(cfg *config.Config) zerolog.Logger {
	return build(os.Stdout, cfg.AppEnv, cfg.LogLevel)
}

func build(out io.Writer, appEnv, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if appEnv == developmentEnv {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "givebox").
		Logger()
}
