package ratio

// Floor returns the largest integer not greater than x.
func (x Ratio[T, I]) Floor() Ratio[T, I] {
	var o I
	q, _ := o.DivModFloor(x.numer, x.denom)
	return FromInteger[T, I](q)
}

// Ceil returns the smallest integer not less than x.
func (x Ratio[T, I]) Ceil() Ratio[T, I] {
	var o I
	q, m := o.DivModFloor(x.numer, x.denom)
	if o.Sign(m) != 0 {
		q = o.Add(q, o.One())
	}
	return FromInteger[T, I](q)
}

// Trunc returns x rounded toward zero.
func (x Ratio[T, I]) Trunc() Ratio[T, I] {
	return FromInteger[T, I](x.ToInteger())
}

// Fract returns the fractional part of x, which has the sign of x, such that
// x == x.Trunc() + x.Fract(). The result is not reduced.
func (x Ratio[T, I]) Fract() Ratio[T, I] {
	var o I
	return Ratio[T, I]{o.Rem(x.numer, x.denom), x.denom}
}

// Round returns x rounded to the nearest integer, with ties rounded away from
// zero.
func (x Ratio[T, I]) Round() Ratio[T, I] {
	var o I
	one := o.One()
	two := o.Add(one, one)

	// |fract(x)| as fn/fd, without ever doubling fn
	fn, fd := o.Rem(x.numer, x.denom), x.denom
	if o.Sign(fd) < 0 {
		fn, fd = o.Neg(fn), o.Neg(fd)
	}
	if o.Sign(fn) < 0 {
		fn = o.Neg(fn)
	}

	// fn/fd >= 1/2 iff fn >= ceil(fd/2)
	half := o.Quo(fd, two)
	if o.Sign(o.Rem(fd, two)) != 0 {
		half = o.Add(half, one)
	}

	trunc := x.ToInteger()
	if o.Cmp(fn, half) >= 0 {
		if x.IsNegative() {
			trunc = o.Sub(trunc, one)
		} else {
			trunc = o.Add(trunc, one)
		}
	}
	return FromInteger[T, I](trunc)
}
