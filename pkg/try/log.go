package try

import (
	"github.com/ib-77/tryops/pkg/errfmt"
)

// failureMessage builds "<msg>: <error chain joined by ': '>", or just the
// chain when msg is empty.
func failureMessage(msg string, err error) string {
	chain := errfmt.JoinSources(err, ": ")
	if msg == "" {
		return chain
	}
	return msg + ": " + chain
}

// Log passes the formatted failure to the sink at the given level and
// returns the Result unchanged. A success never touches the sink.
func (r Result[T]) Log(s Sink, level Level, msg string) Result[T] {
	if r.isSuccess {
		return r
	}
	s.Log(level, failureMessage(msg, r.err))
	return r
}

func (r Result[T]) LogError(s Sink, msg string) Result[T] {
	return r.Log(s, LevelError, msg)
}

func (r Result[T]) LogWarn(s Sink, msg string) Result[T] {
	return r.Log(s, LevelWarn, msg)
}

func (r Result[T]) LogInfo(s Sink, msg string) Result[T] {
	return r.Log(s, LevelInfo, msg)
}

func (r Result[T]) LogDebug(s Sink, msg string) Result[T] {
	return r.Log(s, LevelDebug, msg)
}

func (r Result[T]) LogTrace(s Sink, msg string) Result[T] {
	return r.Log(s, LevelTrace, msg)
}

// LogAndReplaceWith logs the original failure, then returns a Result carrying
// convert's error instead. convert sees the original error before it is
// replaced, so call sites can map domain errors to boundary errors (an HTTP
// handler turning storage errors into status-shaped ones, for example) while
// the precise error still reaches the log.
func (r Result[T]) LogAndReplaceWith(s Sink, level Level, msg string, convert func(err error) error) Result[T] {
	if r.isSuccess {
		return r
	}
	replacement := convert(r.err)
	s.Log(level, failureMessage(msg, r.err))
	return Fail[T](replacement)
}

// LogAndReplace logs the original failure and returns a Result carrying
// replacement instead.
func (r Result[T]) LogAndReplace(s Sink, level Level, msg string, replacement error) Result[T] {
	return r.LogAndReplaceWith(s, level, msg, func(error) error { return replacement })
}

func (r Result[T]) LogErrorAndReplace(s Sink, msg string, replacement error) Result[T] {
	return r.LogAndReplace(s, LevelError, msg, replacement)
}

func (r Result[T]) LogErrorAndReplaceWith(s Sink, msg string, convert func(err error) error) Result[T] {
	return r.LogAndReplaceWith(s, LevelError, msg, convert)
}
