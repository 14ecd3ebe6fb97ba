package checked

import "fmt"

// OverflowError reports a two-operand operation whose exact result does not
// fit in the operand type. Left and Right hold the original operands,
// untransformed.
type OverflowError[L, R Integer] struct {
	Left  L
	Op    string
	Right R
}

func (e OverflowError[L, R]) Error() string {
	return fmt.Sprintf("operation %v %s %v overflowed", e.Left, e.Op, e.Right)
}

// DivZeroError reports division or remainder with a zero divisor.
type DivZeroError[T Integer] struct {
	Dividend T
}

func (e DivZeroError[T]) Error() string {
	return fmt.Sprintf("attempted to divide %v by zero", e.Dividend)
}

// ShiftError reports a shift by at least the bit width of the operand type.
type ShiftError[T Integer] struct {
	Left T
	Op   string
	By   uint
}

func (e ShiftError[T]) Error() string {
	return fmt.Sprintf("operation %v %s %d attempted to shift too much (the type of LHS is %T)",
		e.Left, e.Op, e.By, e.Left)
}

// NegError reports a negation whose result is not representable: the minimum
// signed value, or any nonzero unsigned value.
type NegError[T Integer] struct {
	Value T
}

func (e NegError[T]) Error() string {
	return fmt.Sprintf("negation of %v overflows %T", e.Value, e.Value)
}

// ConvError reports a conversion that would lose magnitude or sign
// information. Value is the attempted source value; Target names the
// destination type.
type ConvError[T Integer] struct {
	Value  T
	Target string
}

func (e ConvError[T]) Error() string {
	return fmt.Sprintf("cannot convert %v (%T) to %s: value out of range", e.Value, e.Value, e.Target)
}
