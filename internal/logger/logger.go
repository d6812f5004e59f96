// Package logger provides the process-wide structured logger.
//
// It is a thin shim over log/slog: Init installs a JSON handler sized for
// the current environment, and the package-level helpers log through a
// singleton so call sites never carry a logger value around.
package logger

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// singleton is the package-level logger created by Init.
// Accessed atomically to be safe for concurrent use across goroutines.
var singleton atomic.Pointer[slog.Logger]

func init() {
	// Default logger so callers that skip Init() don't panic.
	singleton.Store(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

// Init configures the singleton logger. Development builds log at debug
// level, everything else at info.
func Init(env string) {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	singleton.Store(slog.New(handler))
}

// Set replaces the singleton logger. Intended for tests that need to
// capture log output.
func Set(l *slog.Logger) {
	singleton.Store(l)
}

func get() *slog.Logger {
	return singleton.Load()
}

// Debug logs a message at debug level with optional key-value fields.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Info logs a message at info level with optional key-value fields.
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Warn logs a message at warn level with optional key-value fields.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs a message at error level with optional key-value fields.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

// Fatal logs at error level and terminates the process.
func Fatal(msg string, args ...any) {
	get().Error(msg, args...)
	os.Exit(1)
}
