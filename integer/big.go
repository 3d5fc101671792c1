package integer

import (
	"fmt"
	"math"
	"math/big"
)

// Big implements the integer capability for [big.Int] pointers.
//
// Operations never modify their operands: every result is a newly allocated
// value, so values may be freely shared. A nil pointer is treated as zero.
type Big struct{}

var bigOne = big.NewInt(1)

func val(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return x
}

func (Big) Zero() *big.Int { return new(big.Int) }

func (Big) One() *big.Int { return big.NewInt(1) }

func (Big) Cmp(x, y *big.Int) int { return val(x).Cmp(val(y)) }

func (Big) Sign(x *big.Int) int {
	if x == nil {
		return 0
	}
	return x.Sign()
}

func (Big) Clone(x *big.Int) *big.Int { return new(big.Int).Set(val(x)) }

func (Big) Add(x, y *big.Int) *big.Int { return new(big.Int).Add(val(x), val(y)) }

func (Big) Sub(x, y *big.Int) *big.Int { return new(big.Int).Sub(val(x), val(y)) }

func (Big) Mul(x, y *big.Int) *big.Int { return new(big.Int).Mul(val(x), val(y)) }

// Quo returns x/y, truncated toward zero. It panics if y is zero.
func (Big) Quo(x, y *big.Int) *big.Int { return new(big.Int).Quo(val(x), val(y)) }

// Rem returns the truncated remainder, which has the sign of x. It panics if
// y is zero.
func (Big) Rem(x, y *big.Int) *big.Int { return new(big.Int).Rem(val(x), val(y)) }

func (Big) Neg(x *big.Int) *big.Int { return new(big.Int).Neg(val(x)) }

// GCD returns the non-negative greatest common divisor, with gcd(0, 0) = 0.
func (Big) GCD(x, y *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, val(x), val(y))
}

// DivModFloor returns the quotient rounded toward negative infinity, and the
// matching remainder, which has the sign of y.
func (Big) DivModFloor(x, y *big.Int) (q, m *big.Int) {
	x, y = val(x), val(y)
	q, m = new(big.Int).QuoRem(x, y, new(big.Int))
	if m.Sign() != 0 && m.Sign() != y.Sign() {
		q.Sub(q, bigOne)
		m.Add(m, y)
	}
	return
}

func (o Big) CheckedAdd(x, y *big.Int) (*big.Int, bool) { return o.Add(x, y), true }

func (o Big) CheckedSub(x, y *big.Int) (*big.Int, bool) { return o.Sub(x, y), true }

func (o Big) CheckedMul(x, y *big.Int) (*big.Int, bool) { return o.Mul(x, y), true }

// Bounds always reports false, as [big.Int] is unbounded.
func (Big) Bounds() (lo, hi *big.Int, ok bool) { return nil, nil, false }

func (Big) Append(b []byte, x *big.Int, base int) []byte { return val(x).Append(b, base) }

// Parse parses s using [big.Int.SetString].
func (Big) Parse(s string, base int) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf(`integer: invalid big integer: %q`, s)
	}
	return v, nil
}

func (Big) Int64(x *big.Int) (int64, bool) {
	x = val(x)
	if !x.IsInt64() {
		return 0, false
	}
	return x.Int64(), true
}

func (Big) Uint64(x *big.Int) (uint64, bool) {
	x = val(x)
	if !x.IsUint64() {
		return 0, false
	}
	return x.Uint64(), true
}

func (Big) FromInt64(v int64) (*big.Int, bool) { return big.NewInt(v), true }

func (Big) FromUint64(v uint64) (*big.Int, bool) { return new(big.Int).SetUint64(v), true }

// FromFloat64 truncates v toward zero, failing only if v is NaN or infinite.
func (Big) FromFloat64(v float64) (*big.Int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	i, _ := big.NewFloat(v).Int(nil)
	return i, true
}

// Float64 returns the nearest float64 value, which may be infinite.
func (Big) Float64(x *big.Int) float64 {
	f, _ := val(x).Float64()
	return f
}

func (o Big) BigInt(x *big.Int) *big.Int { return o.Clone(x) }

func (o Big) FromBigInt(v *big.Int) (*big.Int, bool) { return o.Clone(v), true }
