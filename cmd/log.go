package cmd

import (
	"log/slog"
	"os"
)

// SetupLogging installs the default logger: text on stderr, debug level
// when verbose.
func SetupLogging() {
	level := slog.LevelInfo
	if *Verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
