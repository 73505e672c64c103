// Package logging builds the zerolog loggers used by the server and CLI.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a timestamped JSON logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger writing to w.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true}, level)
}

// ParseLevel maps "debug", "info", "warn" or "error" to a zerolog level.
// An empty string selects info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
}
