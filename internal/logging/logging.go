// Package logging builds the zerolog logger shared by the numex commands.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	Level  string    // zerolog level name; empty means info
	Format string    // "console" or "json"
	Writer io.Writer // defaults to os.Stderr so stdout carries only results
}

// New returns a logger writing to opts.Writer at opts.Level. Console format
// is human-oriented; json emits one object per line.
// An unparsable level is returned as an error rather than silently ignored.
func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		lvl, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return zerolog.Nop(), err
		}
		level = lvl
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "numex").
		Logger(), nil
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}

	return fi.Mode()&os.ModeCharDevice != 0
}
