package floater

import (
	"math"

	"github.com/joeycumines/go-ratio"
	"github.com/shopspring/decimal"
)

// ToDecimal converts x to a [decimal.Decimal], rounded to prec decimal
// places, using half-to-even rounding (see [Round]). The conversion of the
// rounded value is exact. It panics if prec is out of the range of an int32.
func ToDecimal[T any, I ratio.Integer[T]](x ratio.Ratio[T, I], prec int) decimal.Decimal {
	if prec > math.MaxInt32 || prec < math.MinInt32 {
		panic(`floater: to decimal: precision out of range`)
	}
	num, _ := roundRat(x.BigRat(), prec)
	if prec < 0 {
		// already scaled back up, the denominator is one
		return decimal.NewFromBigInt(num, 0)
	}
	// the denominator is 10^prec
	return decimal.NewFromBigInt(num, -int32(prec))
}

// FromDecimal converts d to a ratio, exactly, returning [ratio.ErrOverflow]
// if it does not fit T.
func FromDecimal[T any, I ratio.Integer[T]](d decimal.Decimal) (ratio.Ratio[T, I], error) {
	return ratio.FromBigRat[T, I](d.Rat())
}
