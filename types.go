package ratio

import (
	"math/big"

	"github.com/joeycumines/go-ratio/integer"
)

type (
	Rational   = Ratio[int, integer.Int]
	Rational8  = Ratio[int8, integer.Int8]
	Rational16 = Ratio[int16, integer.Int16]
	Rational32 = Ratio[int32, integer.Int32]
	Rational64 = Ratio[int64, integer.Int64]

	// BigRational is an arbitrary-precision ratio.
	BigRational = Ratio[*big.Int, integer.Big]
)

var (
	_ Integer[int8]     = integer.Int8{}
	_ Integer[uint64]   = integer.Uint64{}
	_ Integer[*big.Int] = integer.Big{}
)

// New64 is [New] for [Rational64].
func New64(numer, denom int64) Rational64 {
	return New[int64, integer.Int64](numer, denom)
}

// NewBig is [New] for [BigRational].
func NewBig(numer, denom *big.Int) BigRational {
	return New[*big.Int, integer.Big](numer, denom)
}
