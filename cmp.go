package ratio

// Cmp compares x and y, returning -1, 0, or 1, without any multiplication,
// i.e. it cannot overflow. Unreduced values are supported.
func (x Ratio[T, I]) Cmp(y Ratio[T, I]) int {
	c, _ := x.cmp(y)
	return c
}

// cmp compares the continued fraction expansions of x and y, returning the
// result and the number of terms consumed.
func (x Ratio[T, I]) cmp(y Ratio[T, I]) (c int, steps int) {
	var o I
	an, ad, bn, bd := x.numer, x.denom, y.numer, y.denom
	sign := 1
	for {
		steps++

		if o.Cmp(ad, bd) == 0 {
			c = o.Cmp(an, bn)
			if o.Sign(ad) < 0 {
				c = -c
			}
			return sign * c, steps
		}

		// with equal numerators and like-signed denominators, the
		// denominators compare inversely
		if o.Cmp(an, bn) == 0 && o.Sign(ad) == o.Sign(bd) {
			switch o.Sign(an) {
			case 0:
				return 0, steps
			case 1:
				c = -o.Cmp(ad, bd)
			default:
				c = o.Cmp(ad, bd)
			}
			return sign * c, steps
		}

		aq, ar := o.DivModFloor(an, ad)
		bq, br := o.DivModFloor(bn, bd)
		if c = o.Cmp(aq, bq); c != 0 {
			return sign * c, steps
		}

		switch az, bz := o.Sign(ar) == 0, o.Sign(br) == 0; {
		case az && bz:
			return 0, steps
		case az:
			return -sign, steps
		case bz:
			return sign, steps
		}

		// both fractional parts are non-zero, compare their reciprocals,
		// which have the opposite order
		an, ad, bn, bd = ad, ar, bd, br
		sign = -sign
	}
}

// Equal reports whether x and y have the same value.
func (x Ratio[T, I]) Equal(y Ratio[T, I]) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x Ratio[T, I]) Less(y Ratio[T, I]) bool { return x.Cmp(y) < 0 }

// Compare is [Ratio.Cmp] as a function, e.g. for [slices.SortFunc].
func Compare[T any, I Integer[T]](a, b Ratio[T, I]) int { return a.Cmp(b) }

// Min returns the smaller of a and b, or a if they are equal.
func Min[T any, I Integer[T]](a, b Ratio[T, I]) Ratio[T, I] {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b, or a if they are equal.
func Max[T any, I Integer[T]](a, b Ratio[T, I]) Ratio[T, I] {
	if a.Less(b) {
		return b
	}
	return a
}
