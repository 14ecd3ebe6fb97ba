package try

import (
	"fmt"
	"os"

	"github.com/ib-77/tryops/pkg/errfmt"
)

// Exit code 2 keeps grep-like semantics: 1 means "no matches / ordinary
// failure", 2 means "something actually went wrong".
const exitCode = 2

// UnwrapOr returns the success value, or fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

// UnwrapOrExitCustom returns the success value; on failure it hands the error
// to printer and exits with code 2.
func (r Result[T]) UnwrapOrExitCustom(printer func(err error)) T {
	if r.isSuccess {
		return r.value
	}
	printer(r.err)
	os.Exit(exitCode)
	panic("unreachable")
}

// UnwrapOrExit returns the success value; on failure it prints
// "Error: <chain joined by ': '>" to stderr and exits with code 2.
func (r Result[T]) UnwrapOrExit() T {
	return r.UnwrapOrExitCustom(func(err error) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errfmt.JoinSources(err, ": "))
	})
}

// UnwrapOrExitLog is UnwrapOrExit with the message going to a Sink instead
// of stderr.
func (r Result[T]) UnwrapOrExitLog(s Sink) T {
	return r.UnwrapOrExitCustom(func(err error) {
		s.Log(LevelError, failureMessage("Error", err))
	})
}
