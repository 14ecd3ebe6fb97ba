package errfmt

import (
	"fmt"
	"os"
)

// CausedBySeparator joins chain entries one per line in Fatal output.
const CausedBySeparator = "\n\tcaused by: "

// FatalMessage builds the message Fatal prints: the application name taken
// from os.Args, followed by the full error chain, one cause per line.
func FatalMessage(err error) string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return fmt.Sprintf("Application %s failed: %s", os.Args[0], JoinSources(err, CausedBySeparator))
	}
	return fmt.Sprintf("Application failed: %s", JoinSources(err, CausedBySeparator))
}

// Fatal prints FatalMessage(err) to stderr and exits with code 1.
// Meant for main; a nil err still terminates the process.
func Fatal(err error) {
	FatalCode(err, 1)
}

// FatalCode is Fatal with a caller-chosen exit code.
func FatalCode(err error, code int) {
	fmt.Fprintln(os.Stderr, FatalMessage(err))
	os.Exit(code)
}
