package ratio

// CheckedAdd returns x + y, or false if any intermediate value overflows.
func (x Ratio[T, I]) CheckedAdd(y Ratio[T, I]) (Ratio[T, I], bool) {
	return x.checkedSum(y, false)
}

// CheckedSub returns x - y, or false if any intermediate value overflows.
func (x Ratio[T, I]) CheckedSub(y Ratio[T, I]) (Ratio[T, I], bool) {
	return x.checkedSum(y, true)
}

// checkedSum implements (a*d op b*c) / (b*d)
func (x Ratio[T, I]) checkedSum(y Ratio[T, I], sub bool) (Ratio[T, I], bool) {
	var o I
	ad, ok := o.CheckedMul(x.numer, y.denom)
	if !ok {
		return Ratio[T, I]{}, false
	}
	bc, ok := o.CheckedMul(x.denom, y.numer)
	if !ok {
		return Ratio[T, I]{}, false
	}
	bd, ok := o.CheckedMul(x.denom, y.denom)
	if !ok {
		return Ratio[T, I]{}, false
	}
	var n T
	if sub {
		n, ok = o.CheckedSub(ad, bc)
	} else {
		n, ok = o.CheckedAdd(ad, bc)
	}
	if !ok {
		return Ratio[T, I]{}, false
	}
	return New[T, I](n, bd), true
}

// CheckedMul returns x * y, or false on overflow.
func (x Ratio[T, I]) CheckedMul(y Ratio[T, I]) (Ratio[T, I], bool) {
	var o I
	n, ok := o.CheckedMul(x.numer, y.numer)
	if !ok {
		return Ratio[T, I]{}, false
	}
	d, ok := o.CheckedMul(x.denom, y.denom)
	if !ok {
		return Ratio[T, I]{}, false
	}
	return New[T, I](n, d), true
}

// CheckedDiv returns x / y, or false on overflow, or if y is zero.
func (x Ratio[T, I]) CheckedDiv(y Ratio[T, I]) (Ratio[T, I], bool) {
	var o I
	bc, ok := o.CheckedMul(x.denom, y.numer)
	if !ok || o.Sign(bc) == 0 {
		return Ratio[T, I]{}, false
	}
	ad, ok := o.CheckedMul(x.numer, y.denom)
	if !ok {
		return Ratio[T, I]{}, false
	}
	return New[T, I](ad, bc), true
}
