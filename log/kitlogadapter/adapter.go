// Package kitlogadapter provides a logger that writes to a github.com/go-kit/log.Logger.
package kitlogadapter

import (
	"github.com/go-kit/log"
	kitlevel "github.com/go-kit/log/level"

	"github.com/maximdanilchenko/chtype"
)

type Logger struct {
	l log.Logger
}

func NewLogger(l log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(level chtype.LogLevel, msg string, data map[string]interface{}) {
	logger := l.l
	for k, v := range data {
		logger = log.With(logger, k, v)
	}

	switch level {
	case chtype.LogLevelTrace:
		logger.Log("CHTYPE_LOG_LEVEL", level, "msg", msg)
	case chtype.LogLevelDebug:
		kitlevel.Debug(logger).Log("msg", msg)
	case chtype.LogLevelInfo:
		kitlevel.Info(logger).Log("msg", msg)
	case chtype.LogLevelWarn:
		kitlevel.Warn(logger).Log("msg", msg)
	case chtype.LogLevelError:
		kitlevel.Error(logger).Log("msg", msg)
	default:
		logger.Log("INVALID_CHTYPE_LOG_LEVEL", level, "error", msg)
	}
}
