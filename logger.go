package chtype

import (
	"errors"
	"fmt"
)

// The values for log levels are chosen such that the zero value means that no
// log level was specified and we can default to LogLevelDebug.
const (
	LogLevelTrace = LogLevel(6)
	LogLevelDebug = LogLevel(5)
	LogLevelInfo  = LogLevel(4)
	LogLevelWarn  = LogLevel(3)
	LogLevelError = LogLevel(2)
	LogLevelNone  = LogLevel(1)
)

// LogLevel represents the log level.
type LogLevel int

func (ll LogLevel) String() string {
	switch ll {
	case LogLevelTrace:
		return "trace"
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelNone:
		return "none"
	default:
		return fmt.Sprintf("invalid level %d", ll)
	}
}

// LogLevelFromString converts log level string to constant
//
// Valid levels:
//
//	trace
//	debug
//	info
//	warn
//	error
//	none
func LogLevelFromString(s string) (LogLevel, error) {
	switch s {
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	case "none":
		return LogLevelNone, nil
	default:
		return 0, errors.New("invalid log level")
	}
}

// Logger is the interface used to get logging from chtype internals. Adapters
// for common logging packages are provided in the log directory.
type Logger interface {
	// Log a message at the given level with data key/value pairs. data may be
	// nil.
	Log(level LogLevel, msg string, data map[string]interface{})
}

func (m *Map) shouldLog(lvl LogLevel) bool {
	if m.Logger == nil {
		return false
	}
	level := m.LogLevel
	if level == 0 {
		level = LogLevelDebug
	}
	return lvl <= level
}

func (m *Map) log(lvl LogLevel, msg string, data map[string]interface{}) {
	if m.shouldLog(lvl) {
		m.Logger.Log(lvl, msg, data)
	}
}
