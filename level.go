package qlog

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity of a log message. Levels are totally ordered: a
// message is visible when its logger's severity is at or above the
// process-wide filter level. [LevelDisabled] is a filter-only sentinel that
// suppresses all output; it is not a valid severity for a logger.
type Level int8

const (
	// LevelDisabled suppresses all output when set as the filter level.
	LevelDisabled Level = iota
	// LevelDebug is the most verbose severity.
	LevelDebug
	// LevelTrace marks execution-flow messages.
	LevelTrace
	// LevelInfo marks informational messages.
	LevelInfo
	// LevelWarning marks recoverable anomalies.
	LevelWarning
	// LevelError is the highest severity.
	LevelError
)

// ErrUnknownLevel indicates an unrecognized severity level.
var ErrUnknownLevel = errors.New("unknown log level")

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDisabled:
		return "disabled"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}

	return fmt.Sprintf("level(%d)", int8(l))
}

// Valid reports whether l is a declared severity or the disabled sentinel.
func (l Level) Valid() bool {
	return l >= LevelDisabled && l <= LevelError
}

// ParseLevel parses a severity name. It accepts "warn" for "warning" and
// "disable" for "disabled", and is case-insensitive.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "disable", "disabled":
		return LevelDisabled, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

// Severities returns the declared severities in ascending order, without
// the disabled sentinel.
func Severities() []Level {
	return []Level{LevelDebug, LevelTrace, LevelInfo, LevelWarning, LevelError}
}

// AllLevelStrings returns every accepted level name, for flag help and
// shell completions.
func AllLevelStrings() []string {
	return []string{"debug", "trace", "info", "warning", "error", "disabled"}
}

// validSeverity rejects levels that cannot be bound to a logger, including
// the disabled sentinel.
func validSeverity(l Level) error {
	if l < LevelDebug || l > LevelError {
		return fmt.Errorf("%w: %d", ErrUnknownLevel, int8(l))
	}

	return nil
}
