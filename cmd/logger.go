package cmd

import (
	"log/slog"
	"os"

	"github.com/jsphweid/pngme/constants"
	"golang.org/x/term"
)

// NewCommandLogger logs to stderr, as text on a terminal and as JSON when
// stderr is redirected. PNGME_LOG_LEVEL sets the level unless verbose is on.
func NewCommandLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if s := constants.GetLogLevel(); s != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(s)); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
