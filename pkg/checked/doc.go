// Package checked provides integer arithmetic that reports failure instead
// of wrapping, saturating, or truncating.
//
// Every function is generic over the fixed-width integer types and returns
// (result, error): the exact mathematical result when it is representable in
// the operand type, otherwise a structured error naming the operation and
// the original operands.
//
// Key operations:
// - Add/Sub/Mul: overflow yields OverflowError
// - Div/DivEuclid/Rem/RemEuclid: zero divisor yields DivZeroError; signed
//   MIN with divisor -1 yields OverflowError
// - Pow: binary exponentiation, overflow yields OverflowError with op "**"
// - Shl/Shr: shifting by the type width or more yields ShiftError
// - Neg/Abs: unrepresentable results yield NegError
// - Conv: lossy conversions between integer types yield ConvError
//
// Failures are deterministic given the same operands; an error value is only
// ever constructed when the operation actually failed. All functions are
// pure and never panic on any input, including zero divided by zero.
package checked
