package logger

import (
	"strings"

	"github.com/fixline/fixline/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	ErrorLevel   = core.ErrorLevel
	WarningLevel = core.WarningLevel
	InfoLevel    = core.InfoLevel
	DebugLevel   = core.DebugLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "ERROR":
		return ErrorLevel
	case "WARNING", "WARN":
		return WarningLevel
	case "INFO":
		return InfoLevel
	case "DEBUG":
		return DebugLevel
	default:
		return InfoLevel
	}
}
