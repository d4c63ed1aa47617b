// Package logging builds the diagnostic logger. User-facing output does not
// go through here; it is printed directly by the commands and the session.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Only warnings and errors are
// shown unless verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
