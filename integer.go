package ratio

import (
	"math/big"
)

// Integer models the operations [Ratio] requires of its backing integer type,
// T. Implementations are expected to be zero-size types, and MUST NOT modify
// any operand, as T may be a pointer (e.g. *big.Int).
//
// See [github.com/joeycumines/go-ratio/integer] for implementations.
type Integer[T any] interface {
	Zero() T
	One() T
	// Cmp returns -1, 0, or 1.
	Cmp(x, y T) int
	Sign(x T) int
	Clone(x T) T

	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	// Quo is truncated division.
	Quo(x, y T) T
	// Rem is the remainder of truncated division.
	Rem(x, y T) T
	Neg(x T) T
	// GCD returns the non-negative greatest common divisor, or zero if both
	// operands are zero.
	GCD(x, y T) T
	// DivModFloor returns the quotient rounded toward negative infinity,
	// and the remainder, which has the sign of y.
	DivModFloor(x, y T) (q, m T)

	// CheckedAdd and friends report false on overflow.
	CheckedAdd(x, y T) (T, bool)
	CheckedSub(x, y T) (T, bool)
	CheckedMul(x, y T) (T, bool)

	// Bounds returns the minimum and maximum values of T, or false if T is
	// unbounded.
	Bounds() (lo, hi T, ok bool)

	Append(b []byte, x T, base int) []byte
	Parse(s string, base int) (T, error)

	Int64(x T) (int64, bool)
	Uint64(x T) (uint64, bool)
	FromInt64(v int64) (T, bool)
	FromUint64(v uint64) (T, bool)
	// FromFloat64 truncates toward zero, failing for NaN, infinities, and
	// values out of range.
	FromFloat64(v float64) (T, bool)
	Float64(x T) float64
	BigInt(x T) *big.Int
	FromBigInt(v *big.Int) (T, bool)
}
