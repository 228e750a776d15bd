package widget

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package logger for state-transition debugging.
// Default level is Info, which suppresses the per-transition Debug messages.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Str("pkg", "widget").Logger()

// SetVerbose enables or disables debug logging of vetoes, evictions,
// attachments and tab changes. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
}

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logger.GetLevel() <= zerolog.DebugLevel
}

// describe names an element for log output.
func describe(e Element) string {
	c := nodeOf(e)
	if c == nil {
		return "<nil>"
	}
	if c.name != "" {
		return c.name
	}
	return typeName(e)
}
