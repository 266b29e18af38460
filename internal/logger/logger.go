// Package logger provides diagnostic logging for the hie CLI.
// Warnings (skipped fields, unit fallbacks) are always written to stderr.
// When verbose mode is enabled via the --verbose flag, debug and info
// messages are printed too, tracing each step of an evaluation.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu    sync.RWMutex
	level = new(slog.LevelVar)
	base  *slog.Logger
)

func init() {
	level.Set(slog.LevelWarn)
	base = newLogger(os.Stderr)
}

// newLogger builds a text logger without timestamps so output is reproducible.
func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	if v {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelWarn)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	return level.Level() <= slog.LevelDebug
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = newLogger(w)
}

// Logger returns the underlying structured logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func logf(lvl slog.Level, format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), lvl) {
		return
	}
	l.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}

// Section marks the start of a pipeline stage if verbose mode is enabled.
func Section(name string) {
	Logger().Debug("section", slog.String("name", name))
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

// Error prints an error message with the error attached.
func Error(msg string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("error", err.Error()))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	Logger().Error(msg, args...)
}
