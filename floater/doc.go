// Package floater is not the shit in the toilet. Decimal utils for
// [github.com/joeycumines/go-ratio].
//
// Most notably, this package provides half-to-even rounding of ratios to a
// number of decimal places ([Round]), exact decimal formatting
// ([FormatDecimal], [FormatExact]), and lossless conversion to and from
// [github.com/shopspring/decimal.Decimal].
package floater
