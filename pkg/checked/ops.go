package checked

// Add returns a+b, or an OverflowError when the exact sum does not fit in T.
func Add[T Integer](a, b T) (T, error) {
	var zero T
	s := a + b
	if (b > zero && s < a) || (b < zero && s > a) {
		return zero, OverflowError[T, T]{Left: a, Op: "+", Right: b}
	}
	return s, nil
}

// Sub returns a-b, or an OverflowError when the exact difference does not
// fit in T.
func Sub[T Integer](a, b T) (T, error) {
	var zero T
	d := a - b
	if (b > zero && d > a) || (b < zero && d < a) {
		return zero, OverflowError[T, T]{Left: a, Op: "-", Right: b}
	}
	return d, nil
}

// Mul returns a*b, or an OverflowError when the exact product does not fit
// in T.
func Mul[T Integer](a, b T) (T, error) {
	var zero T
	if a == zero || b == zero {
		return zero, nil
	}
	if isSigned[T]() {
		// MIN * -1 wraps back to MIN and would make the division check
		// below fault, so it is rejected up front.
		negOne := zero - 1
		min := minOf[T]()
		if (a == min && b == negOne) || (a == negOne && b == min) {
			return zero, OverflowError[T, T]{Left: a, Op: "*", Right: b}
		}
	}
	p := a * b
	if p/b != a {
		return zero, OverflowError[T, T]{Left: a, Op: "*", Right: b}
	}
	return p, nil
}

// Div returns the truncated quotient a/b. A zero divisor yields a
// DivZeroError; for signed types, MIN/-1 yields an OverflowError because the
// quotient is not representable.
func Div[T Integer](a, b T) (T, error) {
	var zero T
	if b == zero {
		return zero, DivZeroError[T]{Dividend: a}
	}
	if isSigned[T]() && a == minOf[T]() && b == zero-1 {
		return zero, OverflowError[T, T]{Left: a, Op: "/", Right: b}
	}
	return a / b, nil
}

// DivEuclid returns the Euclidean quotient of a and b: the q for which
// a = b*q + r with 0 <= r < |b|. Failure conditions match Div.
func DivEuclid[T Integer](a, b T) (T, error) {
	q, err := Div(a, b)
	if err != nil {
		return q, err
	}
	var zero T
	if r := a % b; r < zero {
		if b > zero {
			q--
		} else {
			q++
		}
	}
	return q, nil
}

// Rem returns the truncated remainder a%b. A zero divisor yields a
// DivZeroError; for signed types, MIN%-1 yields an OverflowError because the
// implied quotient is not representable.
func Rem[T Integer](a, b T) (T, error) {
	var zero T
	if b == zero {
		return zero, DivZeroError[T]{Dividend: a}
	}
	if isSigned[T]() && a == minOf[T]() && b == zero-1 {
		return zero, OverflowError[T, T]{Left: a, Op: "%", Right: b}
	}
	return a % b, nil
}

// RemEuclid returns the least non-negative remainder of a and b. Failure
// conditions match Rem.
func RemEuclid[T Integer](a, b T) (T, error) {
	r, err := Rem(a, b)
	if err != nil {
		return r, err
	}
	var zero T
	if r < zero {
		if b < zero {
			r -= b
		} else {
			r += b
		}
	}
	return r, nil
}

// Pow returns base**exp by binary exponentiation, or an OverflowError
// carrying the original base and exponent when any intermediate product does
// not fit in T. Pow(x, 0) is 1 for every x.
func Pow[T Integer](base T, exp uint32) (T, error) {
	if exp == 0 {
		return T(1), nil
	}
	var zero T
	acc := T(1)
	b := base
	for e := exp; e > 1; e >>= 1 {
		if e&1 == 1 {
			v, err := Mul(acc, b)
			if err != nil {
				return zero, OverflowError[T, uint32]{Left: base, Op: "**", Right: exp}
			}
			acc = v
		}
		sq, err := Mul(b, b)
		if err != nil {
			return zero, OverflowError[T, uint32]{Left: base, Op: "**", Right: exp}
		}
		b = sq
	}
	v, err := Mul(acc, b)
	if err != nil {
		return zero, OverflowError[T, uint32]{Left: base, Op: "**", Right: exp}
	}
	return v, nil
}

// Shl returns a<<by, or a ShiftError when by is at least the bit width of T.
func Shl[T Integer](a T, by uint) (T, error) {
	if by >= widthOf[T]() {
		var zero T
		return zero, ShiftError[T]{Left: a, Op: "<<", By: by}
	}
	return a << by, nil
}

// Shr returns a>>by, or a ShiftError when by is at least the bit width of T.
func Shr[T Integer](a T, by uint) (T, error) {
	if by >= widthOf[T]() {
		var zero T
		return zero, ShiftError[T]{Left: a, Op: ">>", By: by}
	}
	return a >> by, nil
}

// Neg returns -a. Negating the minimum signed value, or any nonzero unsigned
// value, yields a NegError.
func Neg[T Integer](a T) (T, error) {
	var zero T
	if isSigned[T]() {
		if a == minOf[T]() {
			return zero, NegError[T]{Value: a}
		}
		return -a, nil
	}
	if a != zero {
		return zero, NegError[T]{Value: a}
	}
	return zero, nil
}

// Abs returns the absolute value of a, or a NegError for the minimum signed
// value, whose positive counterpart is not representable.
func Abs[T Signed](a T) (T, error) {
	if a == minOf[T]() {
		var zero T
		return zero, NegError[T]{Value: a}
	}
	if a < 0 {
		return -a, nil
	}
	return a, nil
}
