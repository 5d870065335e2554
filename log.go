package reveal

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).
	Level(zerolog.InfoLevel).
	With().Timestamp().Str("component", "reveal").Logger()

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// SetLogger replaces the package logger. Use zerolog.Nop() to silence it.
func SetLogger(l zerolog.Logger) {
	logger = l
}
