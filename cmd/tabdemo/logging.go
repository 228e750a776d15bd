package main

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/go-theft-auto/widget"
)

// setupLogging points the widget logger at w: human readable on a terminal,
// JSON otherwise.
func setupLogging(flags *rootFlags, w io.Writer) error {
	level := zerolog.InfoLevel
	if flags.verbose {
		level = zerolog.DebugLevel
	}
	if flags.logLevel != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(flags.logLevel))
		if err != nil {
			return err
		}
		level = parsed
	}

	output := w
	if isTerminal(w) {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.Kitchen
		output = console
	}

	widget.SetLogger(zerolog.New(output).Level(level).With().Timestamp().Str("pkg", "widget").Logger())
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
