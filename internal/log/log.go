// Package log is a small leveled logger for diagnostics. User-facing output is
// printed by the commands themselves; this package only writes to stderr and
// stays quiet unless --verbose raises the level to debug.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	mu     sync.Mutex
	level  = new(slog.LevelVar)
	logger = newLogger(os.Stderr)
)

func init() {
	level.Set(LevelWarn)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return level.Level()
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs a debug message with optional key/value attributes.
func Debug(msg string, args ...any) {
	current().Log(context.Background(), LevelDebug, msg, args...)
}

// Info logs an info message.
func Info(msg string, args ...any) {
	current().Log(context.Background(), LevelInfo, msg, args...)
}

// Warn logs a warning.
func Warn(msg string, args ...any) {
	current().Log(context.Background(), LevelWarn, msg, args...)
}

// Error logs an error.
func Error(msg string, args ...any) {
	current().Log(context.Background(), LevelError, msg, args...)
}
