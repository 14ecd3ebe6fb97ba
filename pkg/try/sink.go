package try

import (
	"fmt"
	"io"
)

// Level is the severity a formatted failure is logged at.
type Level int8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// Sink accepts pre-formatted diagnostic lines. Any logger can participate by
// wrapping it in an adapter; see the zapsink and logrsink subpackages and
// SinkFunc for ad-hoc sinks.
type Sink interface {
	Log(level Level, msg string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(level Level, msg string)

func (f SinkFunc) Log(level Level, msg string) {
	f(level, msg)
}

// WriterSink returns a Sink writing one "<level>: <msg>" line per call.
// Useful for tests and small CLIs.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(level Level, msg string) {
		fmt.Fprintf(w, "%s: %s\n", level, msg)
	})
}
