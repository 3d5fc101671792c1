package floater

import (
	"math/big"
	"unsafe"

	"github.com/joeycumines/go-ratio"
)

// FormatDecimal formats x as a decimal number, rounded to prec decimal
// places, using half-to-even rounding. Like the stdlib formatters, exactly
// prec decimal places are included, padding with trailing zeros as
// necessary. A negative prec rounds to the left of the decimal point, and
// formats no decimal places.
func FormatDecimal[T any, I ratio.Integer[T]](x ratio.Ratio[T, I], prec int) string {
	b := AppendDecimal(nil, x, prec)
	// convert to string w/o alloc, using the unsafe package
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// AppendDecimal is the append variant of [FormatDecimal].
func AppendDecimal[T any, I ratio.Integer[T]](b []byte, x ratio.Ratio[T, I], prec int) []byte {
	return appendDecimal(b, x.BigRat(), prec)
}

func appendDecimal(b []byte, rat *big.Rat, prec int) []byte {
	num, den := roundRat(rat, prec)
	// exact, as den is a power of ten
	return append(b, new(big.Rat).SetFrac(num, den).FloatString(max(prec, 0))...)
}

// FormatExact formats x as a decimal number, without any loss of precision,
// returning false if x has no finite decimal representation (e.g. 1/3).
func FormatExact[T any, I ratio.Integer[T]](x ratio.Ratio[T, I]) (string, bool) {
	rat := x.BigRat()
	n, exact := rat.FloatPrec()
	if !exact {
		return ``, false
	}
	return string(appendDecimal(nil, rat, n)), true
}
