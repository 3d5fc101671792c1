package ratio

// Add returns x + y.
func (x Ratio[T, I]) Add(y Ratio[T, I]) Ratio[T, I] {
	var o I
	if o.Cmp(x.denom, y.denom) == 0 {
		return New[T, I](o.Add(x.numer, y.numer), x.denom)
	}
	return New[T, I](
		o.Add(o.Mul(x.numer, y.denom), o.Mul(x.denom, y.numer)),
		o.Mul(x.denom, y.denom),
	)
}

// Sub returns x - y.
func (x Ratio[T, I]) Sub(y Ratio[T, I]) Ratio[T, I] {
	var o I
	if o.Cmp(x.denom, y.denom) == 0 {
		return New[T, I](o.Sub(x.numer, y.numer), x.denom)
	}
	return New[T, I](
		o.Sub(o.Mul(x.numer, y.denom), o.Mul(x.denom, y.numer)),
		o.Mul(x.denom, y.denom),
	)
}

// Mul returns x * y.
func (x Ratio[T, I]) Mul(y Ratio[T, I]) Ratio[T, I] {
	var o I
	return New[T, I](o.Mul(x.numer, y.numer), o.Mul(x.denom, y.denom))
}

// Div returns x / y. It panics with [ErrDivisionByZero] if y is zero.
func (x Ratio[T, I]) Div(y Ratio[T, I]) Ratio[T, I] {
	var o I
	if o.Sign(y.numer) == 0 {
		panic(ErrDivisionByZero)
	}
	return New[T, I](o.Mul(x.numer, y.denom), o.Mul(x.denom, y.numer))
}

// Rem returns the remainder of x / y, truncated, i.e. with the sign of x.
// It panics with [ErrDivisionByZero] if y is zero.
func (x Ratio[T, I]) Rem(y Ratio[T, I]) Ratio[T, I] {
	var o I
	if o.Sign(y.numer) == 0 {
		panic(ErrDivisionByZero)
	}
	if o.Cmp(x.denom, y.denom) == 0 {
		return New[T, I](o.Rem(x.numer, y.numer), x.denom)
	}
	return New[T, I](
		o.Rem(o.Mul(x.numer, y.denom), nonZero[T, I](o.Mul(x.denom, y.numer))),
		o.Mul(x.denom, y.denom),
	)
}

// nonZero returns v, or panics with [ErrDivisionByZero], e.g. if a wrapping
// multiplication produced a zero divisor.
func nonZero[T any, I Integer[T]](v T) T {
	var o I
	if o.Sign(v) == 0 {
		panic(ErrDivisionByZero)
	}
	return v
}

// AddInt returns x + v.
func (x Ratio[T, I]) AddInt(v T) Ratio[T, I] {
	var o I
	return New[T, I](o.Add(x.numer, o.Mul(x.denom, v)), x.denom)
}

// SubInt returns x - v.
func (x Ratio[T, I]) SubInt(v T) Ratio[T, I] {
	var o I
	return New[T, I](o.Sub(x.numer, o.Mul(x.denom, v)), x.denom)
}

// MulInt returns x * v.
func (x Ratio[T, I]) MulInt(v T) Ratio[T, I] {
	var o I
	return New[T, I](o.Mul(x.numer, v), x.denom)
}

// DivInt returns x / v. It panics with [ErrDivisionByZero] if v is zero.
func (x Ratio[T, I]) DivInt(v T) Ratio[T, I] {
	var o I
	if o.Sign(v) == 0 {
		panic(ErrDivisionByZero)
	}
	return New[T, I](x.numer, o.Mul(x.denom, v))
}

// RemInt returns the remainder of x / v, with the sign of x. It panics with
// [ErrDivisionByZero] if v is zero.
func (x Ratio[T, I]) RemInt(v T) Ratio[T, I] {
	var o I
	if o.Sign(v) == 0 {
		panic(ErrDivisionByZero)
	}
	return New[T, I](o.Rem(x.numer, nonZero[T, I](o.Mul(x.denom, v))), x.denom)
}

// Neg returns -x. Only the numerator changes sign.
func (x Ratio[T, I]) Neg() Ratio[T, I] {
	var o I
	return Ratio[T, I]{o.Neg(x.numer), x.denom}
}

// IsPositive reports whether x > 0.
func (x Ratio[T, I]) IsPositive() bool {
	var o I
	return o.Sign(x.numer)*o.Sign(x.denom) > 0
}

// IsNegative reports whether x < 0.
func (x Ratio[T, I]) IsNegative() bool {
	var o I
	return o.Sign(x.numer)*o.Sign(x.denom) < 0
}

// Signum returns -1, 0, or 1, as a ratio.
func (x Ratio[T, I]) Signum() Ratio[T, I] {
	var o I
	switch {
	case x.IsPositive():
		return One[T, I]()
	case x.IsNegative():
		return FromInteger[T, I](o.Neg(o.One()))
	default:
		return Zero[T, I]()
	}
}

// Abs returns |x|.
func (x Ratio[T, I]) Abs() Ratio[T, I] {
	if x.IsNegative() {
		return x.Neg()
	}
	return x
}

// AbsSub returns x - y if x > y, otherwise zero.
func (x Ratio[T, I]) AbsSub(y Ratio[T, I]) Ratio[T, I] {
	if x.Cmp(y) <= 0 {
		return Zero[T, I]()
	}
	return x.Sub(y)
}

// Pow returns x raised to the (possibly negative) power exp. Negative powers
// of zero panic with [ErrDivisionByZero].
func (x Ratio[T, I]) Pow(exp int) Ratio[T, I] {
	if exp < 0 {
		// avoids negating math.MinInt
		return x.Recip().pow(uint(-(exp + 1)) + 1)
	}
	return x.pow(uint(exp))
}

func (x Ratio[T, I]) pow(exp uint) Ratio[T, I] {
	// powers of coprime values are coprime
	return Ratio[T, I]{ipow[T, I](x.numer, exp), ipow[T, I](x.denom, exp)}
}

func ipow[T any, I Integer[T]](base T, exp uint) T {
	var o I
	result := o.One()
	for exp != 0 {
		if exp&1 != 0 {
			result = o.Mul(result, base)
		}
		exp >>= 1
		if exp != 0 {
			base = o.Mul(base, base)
		}
	}
	return result
}
