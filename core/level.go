package core

// Level represents the severity of a log entry. Levels are ordered from
// most to least severe: a lower numeric value means a more severe level.
type Level int8

const (
	// ErrorLevel for failures that need operator attention
	ErrorLevel Level = iota
	// WarningLevel for abnormal but recoverable conditions
	WarningLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// lastLevel is a bound sentinel, never itself loggable
	lastLevel
)

// Valid reports whether l is a loggable level (the sentinel is not).
func (l Level) Valid() bool {
	return l >= ErrorLevel && l < lastLevel
}

// String returns the display name of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}
