// Package logging configures the process logger.
//
// The tool has two effective verbosities: info (default) and debug. Debug
// additionally surfaces raw WAPI response bodies from the client layer.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Configure builds a slog logger writing to out (stderr when nil) and
// installs it as the process default.
func Configure(debug bool, out io.Writer) *slog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
