package integer

import (
	"cmp"
	"math"
	"math/big"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

type (
	// Fixed implements the integer capability for any fixed-width integer.
	Fixed[T constraints.Integer] struct{}

	Int    = Fixed[int]
	Int8   = Fixed[int8]
	Int16  = Fixed[int16]
	Int32  = Fixed[int32]
	Int64  = Fixed[int64]
	Uint   = Fixed[uint]
	Uint8  = Fixed[uint8]
	Uint16 = Fixed[uint16]
	Uint32 = Fixed[uint32]
	Uint64 = Fixed[uint64]
)

func (Fixed[T]) Zero() T { return 0 }

func (Fixed[T]) One() T { return 1 }

func (Fixed[T]) Cmp(x, y T) int { return cmp.Compare(x, y) }

func (Fixed[T]) Sign(x T) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func (Fixed[T]) Clone(x T) T { return x }

func (Fixed[T]) Add(x, y T) T { return x + y }

func (Fixed[T]) Sub(x, y T) T { return x - y }

func (Fixed[T]) Mul(x, y T) T { return x * y }

// Quo returns x/y, truncated toward zero. It panics if y is zero.
func (Fixed[T]) Quo(x, y T) T { return x / y }

// Rem returns x%y, which has the sign of x. It panics if y is zero.
func (Fixed[T]) Rem(x, y T) T { return x % y }

func (Fixed[T]) Neg(x T) T { return -x }

// GCD returns the greatest common divisor of x and y, which is non-negative
// unless the result is the minimum value of a signed T (e.g. gcd(-128, 0) for
// int8), in which case it wraps.
func (Fixed[T]) GCD(x, y T) T {
	for y != 0 {
		x, y = y, x%y
	}
	if x < 0 {
		x = -x
	}
	return x
}

// DivModFloor returns the quotient rounded toward negative infinity, and the
// matching remainder, which has the sign of y.
func (Fixed[T]) DivModFloor(x, y T) (q, m T) {
	q, m = x/y, x%y
	if m != 0 && (m < 0) != (y < 0) {
		q--
		m += y
	}
	return
}

func (o Fixed[T]) CheckedAdd(x, y T) (T, bool) {
	s := x + y
	if o.Signed() {
		if (y > 0 && s < x) || (y < 0 && s > x) {
			return 0, false
		}
	} else if s < x {
		return 0, false
	}
	return s, true
}

func (o Fixed[T]) CheckedSub(x, y T) (T, bool) {
	d := x - y
	if o.Signed() {
		if (y > 0 && d > x) || (y < 0 && d < x) {
			return 0, false
		}
	} else if y > x {
		return 0, false
	}
	return d, true
}

func (o Fixed[T]) CheckedMul(x, y T) (T, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if o.Signed() {
		lo, _, _ := o.Bounds()
		// the only products that division can't catch
		if (x == lo && y == ^T(0)) || (y == lo && x == ^T(0)) {
			return 0, false
		}
	}
	p := x * y
	if p/y != x {
		return 0, false
	}
	return p, true
}

// Bounds returns the minimum and maximum values of T. The final value is
// always true.
func (o Fixed[T]) Bounds() (lo, hi T, ok bool) {
	if o.Signed() {
		hi = T(1)<<(o.Bits()-1) - 1
		lo = -hi - 1
	} else {
		hi = ^T(0)
	}
	return lo, hi, true
}

// Signed reports whether T is a signed integer type.
func (Fixed[T]) Signed() bool { return ^T(0) < 0 }

// Bits returns the width of T.
func (Fixed[T]) Bits() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}

func (o Fixed[T]) Append(b []byte, x T, base int) []byte {
	if o.Signed() {
		return strconv.AppendInt(b, int64(x), base)
	}
	return strconv.AppendUint(b, uint64(x), base)
}

// Parse parses s using [strconv.ParseInt] or [strconv.ParseUint], with the
// bit size of T.
func (o Fixed[T]) Parse(s string, base int) (T, error) {
	if o.Signed() {
		v, err := strconv.ParseInt(s, base, o.Bits())
		return T(v), err
	}
	v, err := strconv.ParseUint(s, base, o.Bits())
	return T(v), err
}

func (o Fixed[T]) Int64(x T) (int64, bool) {
	if !o.Signed() && uint64(x) > math.MaxInt64 {
		return 0, false
	}
	return int64(x), true
}

func (Fixed[T]) Uint64(x T) (uint64, bool) {
	if x < 0 {
		return 0, false
	}
	return uint64(x), true
}

func (o Fixed[T]) FromInt64(v int64) (T, bool) {
	t := T(v)
	if int64(t) != v || (t < 0) != (v < 0) {
		return 0, false
	}
	return t, true
}

func (Fixed[T]) FromUint64(v uint64) (T, bool) {
	t := T(v)
	if t < 0 || uint64(t) != v {
		return 0, false
	}
	return t, true
}

// FromFloat64 truncates v toward zero, failing if v is NaN, infinite, or
// outside the range of T.
func (o Fixed[T]) FromFloat64(v float64) (T, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	v = math.Trunc(v)
	bits := o.Bits()
	var lo, hi float64
	if o.Signed() {
		lo, hi = -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	} else {
		hi = math.Ldexp(1, bits)
	}
	// both limits are exact powers of two
	if v < lo || v >= hi {
		return 0, false
	}
	return T(v), true
}

func (Fixed[T]) Float64(x T) float64 { return float64(x) }

func (o Fixed[T]) BigInt(x T) *big.Int {
	if o.Signed() {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

func (o Fixed[T]) FromBigInt(v *big.Int) (T, bool) {
	if v == nil {
		return 0, true
	}
	if v.IsInt64() {
		return o.FromInt64(v.Int64())
	}
	if v.IsUint64() {
		return o.FromUint64(v.Uint64())
	}
	return 0, false
}
