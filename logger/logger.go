// Package logger provides the logger shared across the module.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

// Logger returns the module logger.
func Logger() zerolog.Logger {
	return logger
}

// Set overrides the module logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable discards all log output.
func Disable() {
	logger = zerolog.New(io.Discard)
}
