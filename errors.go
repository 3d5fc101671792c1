package ratio

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the causes of a [ParseError].
type ErrorKind uint8

const (
	// KindMalformed indicates the input was not a valid integer or ratio.
	KindMalformed ErrorKind = iota + 1
	// KindZeroDenominator indicates the denominator parsed as zero.
	KindZeroDenominator
)

type (
	// ParseError is returned when parsing or decoding a ratio fails.
	ParseError struct {
		Kind ErrorKind
	}
)

var (
	// ErrZeroDenominator is the panic value for [New], and matches any
	// error caused by a zero denominator.
	ErrZeroDenominator = errors.New(`ratio: zero denominator`)

	// ErrDivisionByZero is the panic value for reciprocal of, or division
	// by, zero. It wraps ErrZeroDenominator.
	ErrDivisionByZero = fmt.Errorf(`ratio: division by zero: %w`, ErrZeroDenominator)

	// ErrOverflow indicates a value does not fit the target integer type.
	ErrOverflow = errors.New(`ratio: overflow`)

	// ErrApproximation indicates a float could not be converted, e.g. because
	// it is NaN, infinite, or out of range.
	ErrApproximation = errors.New(`ratio: approximation unavailable`)
)

func (x ErrorKind) String() string {
	switch x {
	case KindMalformed:
		return `failed to parse integer`
	case KindZeroDenominator:
		return `zero value denominator`
	default:
		return fmt.Sprintf(`unknown error kind %d`, x)
	}
}

func (x *ParseError) Error() string {
	return `ratio: parse: ` + x.Kind.String()
}

// Is matches [ErrZeroDenominator], for KindZeroDenominator.
func (x *ParseError) Is(target error) bool {
	return target == ErrZeroDenominator && x.Kind == KindZeroDenominator
}
