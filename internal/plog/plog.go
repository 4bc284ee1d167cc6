// Package plog holds the diagnostic logger. It is silent unless verbose
// output is requested; user-facing status lines live in package ui.
package plog

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetVerbose routes debug records to stderr when enabled, or drops them.
func SetVerbose(verbose bool) {
	if !verbose {
		defaultLogger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}
	SetOutput(os.Stderr)
}

// SetOutput sends all records, debug included, to w. Used by tests.
func SetOutput(w io.Writer) {
	defaultLogger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// Debug logs a diagnostic message.
func Debug(msg string, args ...any) {
	defaultLogger.Load().Debug(msg, args...)
}

// Warn logs a warning-level diagnostic.
func Warn(msg string, args ...any) {
	defaultLogger.Load().Warn(msg, args...)
}
