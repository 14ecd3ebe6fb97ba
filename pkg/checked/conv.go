package checked

import "fmt"

// Conv converts v to Out, or returns a ConvError when the value's magnitude
// or sign cannot be preserved in Out.
//
// The round-trip test catches truncation; the sign test catches values that
// survive the round trip only because the bit pattern reinterprets cleanly
// (e.g. int8(-1) to uint64 and back).
func Conv[Out, In Integer](v In) (Out, error) {
	out := Out(v)
	var zeroIn In
	var zeroOut Out
	if In(out) != v || (v < zeroIn) != (out < zeroOut) {
		return zeroOut, ConvError[In]{Value: v, Target: fmt.Sprintf("%T", zeroOut)}
	}
	return out, nil
}
