package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
)

func newLogger(cfg config, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(out).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Str("service", "bookshelf").
		Logger()
}

// newStdLogger adapts logger for net/http's internal error reporting.
func newStdLogger(logger zerolog.Logger) *log.Logger {
	return log.New(logger.With().Str("component", "http.Server").Logger(), "", 0)
}
