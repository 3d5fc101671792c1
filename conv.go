package ratio

import (
	"math"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// FromInt returns v/1, or [ErrOverflow] if v does not fit T.
func FromInt[T any, I Integer[T], V constraints.Integer](v V) (Ratio[T, I], error) {
	var (
		o  I
		t  T
		ok bool
	)
	if v < 0 {
		t, ok = o.FromInt64(int64(v))
	} else {
		t, ok = o.FromUint64(uint64(v))
	}
	if !ok {
		return Ratio[T, I]{}, ErrOverflow
	}
	return FromInteger[T, I](t), nil
}

// Convert converts x to a different backing type, returning [ErrOverflow]
// if either component does not fit. The value is not reduced, i.e. it is
// reduced iff x is.
func Convert[T2 any, I2 Integer[T2], T1 any, I1 Integer[T1]](x Ratio[T1, I1]) (Ratio[T2, I2], error) {
	n, ok := convertInteger[T2, I2, T1, I1](x.numer)
	if !ok {
		return Ratio[T2, I2]{}, ErrOverflow
	}
	d, ok := convertInteger[T2, I2, T1, I1](x.denom)
	if !ok {
		return Ratio[T2, I2]{}, ErrOverflow
	}
	return Ratio[T2, I2]{n, d}, nil
}

func convertInteger[T2 any, I2 Integer[T2], T1 any, I1 Integer[T1]](v T1) (T2, bool) {
	var (
		from I1
		to   I2
	)
	if i, ok := from.Int64(v); ok {
		return to.FromInt64(i)
	}
	if u, ok := from.Uint64(v); ok {
		return to.FromUint64(u)
	}
	return to.FromBigInt(from.BigInt(v))
}

// FromFloat converts v to a ratio, returning [ErrApproximation] if it is not
// possible. Bounded T use [Approximate], with the default limits, while
// unbounded T use [ExactFloat].
func FromFloat[T any, I Integer[T], F constraints.Float](v F) (Ratio[T, I], error) {
	var (
		o  I
		r  Ratio[T, I]
		ok bool
	)
	if _, _, bounded := o.Bounds(); bounded {
		r, ok = Approximate[T, I](v)
	} else {
		r, ok = ExactFloat[T, I](v)
	}
	if !ok {
		return Ratio[T, I]{}, ErrApproximation
	}
	return r, nil
}

// ExactFloat returns the exact value of v, or false if v is NaN, infinite,
// or either component does not fit T.
func ExactFloat[T any, I Integer[T], F constraints.Float](v F) (Ratio[T, I], bool) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Ratio[T, I]{}, false
	}
	if f == 0 {
		return Zero[T, I](), true
	}

	frac, exp := math.Frexp(f)
	// frac * 2^53 is an integer, for every finite float64
	mant := int64(math.Ldexp(frac, 53))
	exp -= 53
	if tz := bits.TrailingZeros64(uint64(mant)); tz > 0 {
		mant >>= tz
		exp += tz
	}

	numer, denom := big.NewInt(mant), big.NewInt(1)
	if exp > 0 {
		numer.Lsh(numer, uint(exp))
	} else {
		denom.Lsh(denom, uint(-exp))
	}

	var o I
	n, ok := o.FromBigInt(numer)
	if !ok {
		return Ratio[T, I]{}, false
	}
	d, ok := o.FromBigInt(denom)
	if !ok {
		return Ratio[T, I]{}, false
	}
	// already in lowest terms, as the mantissa is odd, or denom is 1
	return Ratio[T, I]{n, d}, true
}

// BigRat returns x as a [big.Rat].
func (x Ratio[T, I]) BigRat() *big.Rat {
	var o I
	return new(big.Rat).SetFrac(o.BigInt(x.numer), o.BigInt(x.denom))
}

// FromBigRat converts v, returning [ErrOverflow] if it does not fit T.
func FromBigRat[T any, I Integer[T]](v *big.Rat) (Ratio[T, I], error) {
	var o I
	n, ok := o.FromBigInt(v.Num())
	if !ok {
		return Ratio[T, I]{}, ErrOverflow
	}
	d, ok := o.FromBigInt(v.Denom())
	if !ok {
		return Ratio[T, I]{}, ErrOverflow
	}
	return Ratio[T, I]{n, d}, nil
}

// Float64 returns the nearest float64 value of x, and whether it is exact.
func (x Ratio[T, I]) Float64() (f float64, exact bool) {
	return x.BigRat().Float64()
}

// FromPair returns numer/denom, reduced, or [ErrZeroDenominator] if denom is
// zero. It is the inverse of [Ratio.Pair].
func FromPair[T any, I Integer[T]](numer, denom T) (Ratio[T, I], error) {
	return TryNew[T, I](numer, denom)
}
