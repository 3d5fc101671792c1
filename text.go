package ratio

import (
	"strings"
)

// String returns x as "numer", if the denominator is one, otherwise
// "numer/denom".
func (x Ratio[T, I]) String() string {
	var buf [64]byte
	return string(x.Append(buf[:0], 10))
}

// Append appends the text form of x, in the given base, to b.
func (x Ratio[T, I]) Append(b []byte, base int) []byte {
	var o I
	b = o.Append(b, x.numer, base)
	if o.Cmp(x.denom, o.One()) != 0 {
		b = append(b, '/')
		b = o.Append(b, x.denom, base)
	}
	return b
}

// Parse parses "numer" or "numer/denom", in base 10. The result is reduced.
// Errors are of type [*ParseError].
func Parse[T any, I Integer[T]](s string) (Ratio[T, I], error) {
	return ParseRadix[T, I](s, 10)
}

// ParseRadix is like [Parse], but parses both components in the given base,
// which is interpreted by the backing type, e.g. [strconv.ParseInt].
func ParseRadix[T any, I Integer[T]](s string, base int) (Ratio[T, I], error) {
	var o I
	ns, ds, slash := strings.Cut(s, `/`)
	numer, err := o.Parse(ns, base)
	if err != nil {
		return Ratio[T, I]{}, &ParseError{Kind: KindMalformed}
	}
	denom := o.One()
	if slash {
		if denom, err = o.Parse(ds, base); err != nil {
			return Ratio[T, I]{}, &ParseError{Kind: KindMalformed}
		}
		if o.Sign(denom) == 0 {
			return Ratio[T, I]{}, &ParseError{Kind: KindZeroDenominator}
		}
	}
	return New[T, I](numer, denom), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (x Ratio[T, I]) MarshalText() ([]byte, error) {
	return x.Append(nil, 10), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], using [Parse].
func (x *Ratio[T, I]) UnmarshalText(b []byte) error {
	v, err := Parse[T, I](string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
