package checked

// Signed is the type set of fixed-width signed integers.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the type set of fixed-width unsigned integers.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the union of Signed and Unsigned.
type Integer interface {
	Signed | Unsigned
}

// isSigned reports whether T is a signed type. zero-1 wraps to the maximum
// for unsigned types, so the comparison only holds for signed ones.
func isSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// widthOf returns the bit width of T.
func widthOf[T Integer]() uint {
	var n uint
	for v := T(1); v != 0; v <<= 1 {
		n++
		if v < 0 {
			break
		}
	}
	return n
}

// minOf returns the minimum representable value of T: zero for unsigned
// types, -2^(width-1) for signed ones.
func minOf[T Integer]() T {
	var zero T
	if !isSigned[T]() {
		return zero
	}
	negOne := zero - 1
	return negOne << (widthOf[T]() - 1)
}
