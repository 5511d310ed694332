// Package zerologadapter provides a logger that writes to a github.com/rs/zerolog.
package zerologadapter

import (
	"github.com/rs/zerolog"

	"github.com/maximdanilchenko/chtype"
)

type Logger struct {
	logger zerolog.Logger
}

// NewLogger accepts a zerolog.Logger as input and returns a new custom chtype
// logging facade as output.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{
		logger: logger.With().Str("module", "chtype").Logger(),
	}
}

func (l *Logger) Log(level chtype.LogLevel, msg string, data map[string]interface{}) {
	var zlevel zerolog.Level
	switch level {
	case chtype.LogLevelNone:
		zlevel = zerolog.NoLevel
	case chtype.LogLevelError:
		zlevel = zerolog.ErrorLevel
	case chtype.LogLevelWarn:
		zlevel = zerolog.WarnLevel
	case chtype.LogLevelInfo:
		zlevel = zerolog.InfoLevel
	default:
		zlevel = zerolog.DebugLevel
	}

	chlog := l.logger.With().Fields(data).Logger()
	chlog.WithLevel(zlevel).Msg(msg)
}
