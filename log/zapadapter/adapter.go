// Package zapadapter provides a logger that writes to a go.uber.org/zap.Logger.
package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/maximdanilchenko/chtype"
)

type Logger struct {
	logger *zap.Logger
}

func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (l *Logger) Log(level chtype.LogLevel, msg string, data map[string]interface{}) {
	fields := make([]zapcore.Field, len(data))
	i := 0
	for k, v := range data {
		fields[i] = zap.Any(k, v)
		i++
	}

	switch level {
	case chtype.LogLevelTrace:
		l.logger.Debug(msg, append(fields, zap.Stringer("CHTYPE_LOG_LEVEL", level))...)
	case chtype.LogLevelDebug:
		l.logger.Debug(msg, fields...)
	case chtype.LogLevelInfo:
		l.logger.Info(msg, fields...)
	case chtype.LogLevelWarn:
		l.logger.Warn(msg, fields...)
	case chtype.LogLevelError:
		l.logger.Error(msg, fields...)
	default:
		l.logger.Error(msg, append(fields, zap.Stringer("INVALID_CHTYPE_LOG_LEVEL", level))...)
	}
}
