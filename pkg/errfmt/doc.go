// Package errfmt formats error values and their chains of wrapped causes
// into human-readable strings.
//
// Key operations:
// - JoinSources: render an error and all its Unwrap causes with a separator
// - Chain: lazy ChainView wrapper implementing fmt.Stringer
// - Fatal/FatalCode: print an application-failure message and exit
//
// The package only builds strings; it never writes output by itself except
// in the Fatal helpers, which are meant to be called from main.
package errfmt
