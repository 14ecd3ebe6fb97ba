// Package try provides a generic Result[T] carrying either a success value
// or an error, with helpers for logging failures without branching at the
// call site.
//
// Key operations:
// - Success/Fail/Of: construct a Result, or lift a (value, error) return
// - Log/LogError/...: on failure, format the error chain and pass it to a
//   Sink, returning the Result unchanged
// - LogAndReplace/LogAndReplaceWith: log the original failure, then carry a
//   replacement error onward
// - UnwrapOr/UnwrapOrExit: collapse to a value, or terminate with a readable
//   message and exit code 2
// - Map/Then/Try/Tee/Finally: synchronous composition of results
//
// The Sink interface decouples the helpers from any concrete logger; the
// zapsink and logrsink subpackages adapt go.uber.org/zap and
// github.com/go-logr/logr, and WriterSink covers plain io.Writer targets.
// Logging a failure never suppresses it: the original outcome (or the
// documented replacement) is always returned to the caller, and a success
// value never reaches the sink.
package try
