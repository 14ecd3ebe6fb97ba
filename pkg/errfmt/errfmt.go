package errfmt

import (
	"errors"
	"strings"
)

// JoinSources renders err and every error it wraps as a single string,
// outermost first, with sep between each message.
//
// A nil err yields "". An error with no cause yields only its own message,
// without a trailing separator. Works best with error types whose Error()
// does not already embed the cause text; otherwise messages repeat.
func JoinSources(err error, sep string) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(err.Error())

	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString(sep)
		b.WriteString(cause.Error())
	}

	return b.String()
}

// ChainView is a lazy view over an error chain. It defers string building
// until String is called, so it can be handed to printf-style APIs that may
// never render it.
type ChainView struct {
	err error
	sep string
}

// Chain returns a view that formats err like JoinSources(err, sep).
func Chain(err error, sep string) ChainView {
	return ChainView{err: err, sep: sep}
}

func (v ChainView) String() string {
	return JoinSources(v.err, v.sep)
}

// Err returns the underlying error of the view.
func (v ChainView) Err() error {
	return v.err
}
