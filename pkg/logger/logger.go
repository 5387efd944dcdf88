// Package logger builds the zerolog loggers shared by every component.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is stamped on every line written by New.
const ServiceName = "cashback-rewards"

// New returns the process logger. Lines go to stdout as JSON, or through a
// console writer when pretty is set. Unknown levels fall back to info.
func New(level string, pretty bool) zerolog.Logger {
	out := io.Writer(os.Stdout)
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(level, out).With().
		Str("service", ServiceName).
		Caller().
		Logger()
}

// NewWithWriter returns a timestamped JSON logger on w.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Component derives a child logger tagged with the owning component.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// ParseLevel maps a config level name onto zerolog. "warning" is accepted as
// an alias of warn; empty or unknown names yield info.
func ParseLevel(level string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
