// Package logcat classifies and parses the textual log formats emitted by
// Android's logcat.
package logcat

// Level represents logcat severity levels.
type Level int

const (
	LevelUnknown Level = iota
	LevelVerbose
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

// ParseLevel converts a logcat single-letter severity code to a Level.
func ParseLevel(s string) Level {
	switch s {
	case "V":
		return LevelVerbose
	case "D":
		return LevelDebug
	case "I":
		return LevelInfo
	case "W":
		return LevelWarning
	case "E":
		return LevelError
	case "F":
		return LevelFatal
	default:
		return LevelUnknown
	}
}

// Letter returns the single-letter code for a Level, or the empty string
// for LevelUnknown.
func (l Level) Letter() string {
	switch l {
	case LevelVerbose:
		return "V"
	case LevelDebug:
		return "D"
	case LevelInfo:
		return "I"
	case LevelWarning:
		return "W"
	case LevelError:
		return "E"
	case LevelFatal:
		return "F"
	default:
		return ""
	}
}

// String returns the full severity name.
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "VERBOSE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Record is the parsed representation of one logcat line. Fields not
// captured by the matching format are left empty, never inferred.
type Record struct {
	Timestamp string // date+time prefix, only in Time and ThreadTime
	Level     Level
	Tag       string
	PID       string // numeric, carried as text with padding trimmed
	TID       string // only in ThreadTime
	Message   string
}
