package ratio

// The *Assign methods update the receiver in place. Each computes the new
// numerator and denominator before replacing the receiver, in a single
// assignment, so a panic never leaves it partially updated.

// AddAssign sets x to x + y.
func (x *Ratio[T, I]) AddAssign(y Ratio[T, I]) {
	var o I
	n := o.Add(o.Mul(x.numer, y.denom), o.Mul(x.denom, y.numer))
	d := o.Mul(x.denom, y.denom)
	*x = New[T, I](n, d)
}

// SubAssign sets x to x - y.
func (x *Ratio[T, I]) SubAssign(y Ratio[T, I]) {
	var o I
	n := o.Sub(o.Mul(x.numer, y.denom), o.Mul(x.denom, y.numer))
	d := o.Mul(x.denom, y.denom)
	*x = New[T, I](n, d)
}

// MulAssign sets x to x * y.
func (x *Ratio[T, I]) MulAssign(y Ratio[T, I]) {
	var o I
	n := o.Mul(x.numer, y.numer)
	d := o.Mul(x.denom, y.denom)
	*x = New[T, I](n, d)
}

// DivAssign sets x to x / y. It panics with [ErrDivisionByZero], leaving x
// unchanged, if y is zero.
func (x *Ratio[T, I]) DivAssign(y Ratio[T, I]) {
	var o I
	if o.Sign(y.numer) == 0 {
		panic(ErrDivisionByZero)
	}
	n := o.Mul(x.numer, y.denom)
	d := o.Mul(x.denom, y.numer)
	*x = New[T, I](n, d)
}

// RemAssign sets x to the remainder of x / y. It panics with
// [ErrDivisionByZero], leaving x unchanged, if y is zero.
func (x *Ratio[T, I]) RemAssign(y Ratio[T, I]) {
	var o I
	if o.Sign(y.numer) == 0 {
		panic(ErrDivisionByZero)
	}
	n := o.Rem(o.Mul(x.numer, y.denom), nonZero[T, I](o.Mul(x.denom, y.numer)))
	d := o.Mul(x.denom, y.denom)
	*x = New[T, I](n, d)
}

// AddAssignInt sets x to x + v.
func (x *Ratio[T, I]) AddAssignInt(v T) {
	var o I
	*x = New[T, I](o.Add(x.numer, o.Mul(x.denom, v)), x.denom)
}

// SubAssignInt sets x to x - v.
func (x *Ratio[T, I]) SubAssignInt(v T) {
	var o I
	*x = New[T, I](o.Sub(x.numer, o.Mul(x.denom, v)), x.denom)
}

// MulAssignInt sets x to x * v.
func (x *Ratio[T, I]) MulAssignInt(v T) {
	var o I
	*x = New[T, I](o.Mul(x.numer, v), x.denom)
}

// DivAssignInt sets x to x / v. It panics with [ErrDivisionByZero], leaving
// x unchanged, if v is zero.
func (x *Ratio[T, I]) DivAssignInt(v T) {
	var o I
	if o.Sign(v) == 0 {
		panic(ErrDivisionByZero)
	}
	*x = New[T, I](x.numer, o.Mul(x.denom, v))
}

// RemAssignInt sets x to the remainder of x / v. It panics with
// [ErrDivisionByZero], leaving x unchanged, if v is zero.
func (x *Ratio[T, I]) RemAssignInt(v T) {
	var o I
	if o.Sign(v) == 0 {
		panic(ErrDivisionByZero)
	}
	*x = New[T, I](o.Rem(x.numer, nonZero[T, I](o.Mul(x.denom, v))), x.denom)
}
