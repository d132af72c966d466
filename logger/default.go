package logger

import (
	"os"
	"sync"

	"github.com/fixline/fixline/core"
	"github.com/fixline/fixline/sink"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger writing to standard error
	defaultLogger = NewBuilder().
		WithSink(sink.NewWriter(os.Stderr)).
		WithVerbosity(core.InfoLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger. They
// call the shared path directly so the captured source location is the
// caller's, not this file.

// Errorf logs a formatted error-level message using the default logger
func Errorf(format string, args ...any) {
	Default().logf(core.ErrorLevel, format, args...)
}

// Warningf logs a formatted warning-level message using the default logger
func Warningf(format string, args ...any) {
	Default().logf(core.WarningLevel, format, args...)
}

// Infof logs a formatted info-level message using the default logger
func Infof(format string, args ...any) {
	Default().logf(core.InfoLevel, format, args...)
}

// Debugf logs a formatted debug-level message using the default logger
func Debugf(format string, args ...any) {
	Default().logf(core.DebugLevel, format, args...)
}

// Logf logs a formatted message at an arbitrary level using the default logger
func Logf(level core.Level, format string, args ...any) {
	Default().logf(level, format, args...)
}

// LogExtf logs a formatted extended message using the default logger
func LogExtf(level core.Level, subsystem, format string, args ...any) {
	Default().logExtf(level, subsystem, format, args...)
}

// Verbosity returns the default logger's current threshold
func Verbosity() core.Level {
	return Default().Verbosity()
}

// SetVerbosity reconfigures the default logger's threshold
func SetVerbosity(level core.Level) {
	Default().SetVerbosity(level)
}
