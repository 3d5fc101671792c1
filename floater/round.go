package floater

import (
	"math/big"

	"github.com/joeycumines/go-ratio"
)

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// Round returns x rounded to prec decimal places, using half-to-even
// rounding. Negative values for prec are allowed, and indicate the number of
// places to the left of the decimal point. An error is returned if the result
// does not fit T, e.g. rounding 127.5 to 0 places, for int8.
func Round[T any, I ratio.Integer[T]](x ratio.Ratio[T, I], prec int) (ratio.Ratio[T, I], error) {
	num, den := roundRat(x.BigRat(), prec)
	return ratio.FromBigRat[T, I](new(big.Rat).SetFrac(num, den))
}

// roundRat rounds rat to prec decimals, returning the result as a fraction,
// with a power of ten denominator (or one, if prec <= 0).
func roundRat(rat *big.Rat, prec int) (num, den *big.Int) {
	var scl big.Int
	if prec >= 0 {
		scl.Exp(bigTen, big.NewInt(int64(prec)), nil)
		num = new(big.Int).Mul(rat.Num(), &scl)
		den = new(big.Int).Set(rat.Denom())
	} else {
		scl.Exp(bigTen, big.NewInt(-int64(prec)), nil)
		num = new(big.Int).Set(rat.Num())
		den = new(big.Int).Mul(rat.Denom(), &scl)
	}

	// floor division, as the denominator is positive, then adjust the
	// quotient (y), using half-to-even
	var y, xx big.Int
	y.DivMod(num, den, &xx)
	xx.Lsh(&xx, 1)
	if cmp := xx.Cmp(den); cmp > 0 || (cmp == 0 && y.Bit(0) == 1) {
		y.Add(&y, bigOne)
	}

	if prec >= 0 {
		return &y, &scl
	}
	return y.Mul(&y, &scl), big.NewInt(1)
}
