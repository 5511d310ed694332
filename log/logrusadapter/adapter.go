// Package logrusadapter provides a logger that writes to a github.com/sirupsen/logrus.Logger
// log.
package logrusadapter

import (
	"github.com/sirupsen/logrus"

	"github.com/maximdanilchenko/chtype"
)

type Logger struct {
	l logrus.FieldLogger
}

func NewLogger(l logrus.FieldLogger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) Log(level chtype.LogLevel, msg string, data map[string]interface{}) {
	var logger logrus.FieldLogger
	if data != nil {
		logger = l.l.WithFields(data)
	} else {
		logger = l.l
	}

	switch level {
	case chtype.LogLevelTrace:
		logger.WithField("CHTYPE_LOG_LEVEL", level).Debug(msg)
	case chtype.LogLevelDebug:
		logger.Debug(msg)
	case chtype.LogLevelInfo:
		logger.Info(msg)
	case chtype.LogLevelWarn:
		logger.Warn(msg)
	case chtype.LogLevelError:
		logger.Error(msg)
	default:
		logger.WithField("INVALID_CHTYPE_LOG_LEVEL", level).Error(msg)
	}
}
