// Package zapsink adapts a go.uber.org/zap logger to the try.Sink interface.
//
// Levels map one-to-one except trace, which zap does not have; trace lines
// are logged at zap's debug level.
package zapsink

import (
	"go.uber.org/zap"

	"github.com/ib-77/tryops/pkg/try"
)

type Sink struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) Sink {
	return Sink{logger: logger}
}

func (s Sink) Log(level try.Level, msg string) {
	switch level {
	case try.LevelError:
		s.logger.Error(msg)
	case try.LevelWarn:
		s.logger.Warn(msg)
	case try.LevelInfo:
		s.logger.Info(msg)
	default:
		s.logger.Debug(msg)
	}
}
