package ratio

type (
	// Ratio is an exact rational number, numer/denom, backed by the integer
	// type T, via the operations implemented by I.
	Ratio[T any, I Integer[T]] struct {
		numer T
		denom T
	}
)

// New returns numer/denom, reduced to lowest terms, with a positive
// denominator. It panics with [ErrZeroDenominator] if denom is zero.
func New[T any, I Integer[T]](numer, denom T) Ratio[T, I] {
	var o I
	if o.Sign(denom) == 0 {
		panic(ErrZeroDenominator)
	}
	return Ratio[T, I]{numer, denom}.Reduced()
}

// TryNew is like [New], but returns [ErrZeroDenominator] instead of panicking.
func TryNew[T any, I Integer[T]](numer, denom T) (Ratio[T, I], error) {
	var o I
	if o.Sign(denom) == 0 {
		return Ratio[T, I]{}, ErrZeroDenominator
	}
	return Ratio[T, I]{numer, denom}.Reduced(), nil
}

// NewRaw returns numer/denom without validating or reducing it. The caller
// must ensure denom is not zero. Unreduced values are otherwise supported by
// every operation, and compare and hash equal to their reduced form.
func NewRaw[T any, I Integer[T]](numer, denom T) Ratio[T, I] {
	return Ratio[T, I]{numer, denom}
}

// FromInteger returns v/1.
func FromInteger[T any, I Integer[T]](v T) Ratio[T, I] {
	var o I
	return Ratio[T, I]{v, o.One()}
}

// Zero returns 0/1.
func Zero[T any, I Integer[T]]() Ratio[T, I] {
	var o I
	return Ratio[T, I]{o.Zero(), o.One()}
}

// One returns 1/1.
func One[T any, I Integer[T]]() Ratio[T, I] {
	var o I
	return Ratio[T, I]{o.One(), o.One()}
}

// Numer returns the numerator.
func (x Ratio[T, I]) Numer() T { return x.numer }

// Denom returns the denominator.
func (x Ratio[T, I]) Denom() T { return x.denom }

// Pair returns the numerator and denominator, as stored.
func (x Ratio[T, I]) Pair() (numer, denom T) { return x.numer, x.denom }

// Reduced returns x in lowest terms, with a non-negative denominator.
func (x Ratio[T, I]) Reduced() Ratio[T, I] {
	var o I
	g := o.GCD(x.numer, x.denom)
	if o.Sign(g) == 0 {
		// 0/0, nothing sensible to do
		return x
	}
	n, d := o.Quo(x.numer, g), o.Quo(x.denom, g)
	if o.Sign(d) < 0 {
		n, d = o.Neg(n), o.Neg(d)
	}
	return Ratio[T, I]{n, d}
}

// IsZero reports whether x is 0.
func (x Ratio[T, I]) IsZero() bool {
	var o I
	return o.Sign(x.numer) == 0
}

// IsOne reports whether x is 1.
func (x Ratio[T, I]) IsOne() bool {
	var o I
	return o.Sign(x.numer) != 0 && o.Cmp(x.numer, x.denom) == 0
}

// IsInteger reports whether x has no fractional part.
func (x Ratio[T, I]) IsInteger() bool {
	var o I
	return o.Sign(o.Rem(x.numer, x.denom)) == 0
}

// ToInteger returns x, truncated toward zero, as an integer.
func (x Ratio[T, I]) ToInteger() T {
	var o I
	return o.Quo(x.numer, x.denom)
}

// Recip returns 1/x. It panics with [ErrDivisionByZero] if x is zero.
func (x Ratio[T, I]) Recip() Ratio[T, I] {
	var o I
	switch o.Sign(x.numer) {
	case 0:
		panic(ErrDivisionByZero)
	case -1:
		return Ratio[T, I]{o.Neg(x.denom), o.Neg(x.numer)}
	default:
		return Ratio[T, I]{x.denom, x.numer}
	}
}
