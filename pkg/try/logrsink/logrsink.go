// Package logrsink adapts a github.com/go-logr/logr logger to the try.Sink
// interface.
//
// Error lines use logr's Error path with a nil error (the message already
// contains the formatted chain). Warn and info log at verbosity 0, debug at
// 1, trace at 2.
package logrsink

import (
	"github.com/go-logr/logr"

	"github.com/ib-77/tryops/pkg/try"
)

type Sink struct {
	logger logr.Logger
}

func New(logger logr.Logger) Sink {
	return Sink{logger: logger}
}

func (s Sink) Log(level try.Level, msg string) {
	if level == try.LevelError {
		s.logger.Error(nil, msg)
		return
	}
	s.logger.V(verbosity(level)).Info(msg)
}

func verbosity(level try.Level) int {
	switch level {
	case try.LevelDebug:
		return 1
	case try.LevelTrace:
		return 2
	default:
		return 0
	}
}
