// Package logging sets up the zerolog logger shared by the demo
// binaries and the reference event sink.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-writer zerolog.Logger at the given level
// ("debug", "info", "warn", "error"; unrecognized values fall back to
// info). End-of-file is expected traffic, not a warning, so the
// session handler logs it at debug.
func New(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05.000"}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}
