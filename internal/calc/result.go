package calc

import (
	"github.com/joeycumines/go-utilpkg/jsonenc"
)

type (
	// Result is the rendered form of a single ratio.
	Result struct {
		Type  string
		Ratio string
		Numer string
		Denom string
		// Decimal is rounded half-to-even to [Config.Places].
		Decimal string
		// Exact is empty if there is no finite decimal representation.
		Exact string
		Float float64
	}

	// Rounding is the result of [Engine.Round].
	Rounding struct {
		Ratio    string
		Floor    string
		Ceil     string
		Trunc    string
		Round    string
		HalfEven string
	}
)

// AppendJSON appends x as a JSON object.
func (x *Result) AppendJSON(b []byte) []byte {
	b = append(b, `{"type":`...)
	b = jsonenc.AppendString(b, x.Type)
	b = append(b, `,"ratio":`...)
	b = jsonenc.AppendString(b, x.Ratio)
	b = append(b, `,"numer":`...)
	b = jsonenc.AppendString(b, x.Numer)
	b = append(b, `,"denom":`...)
	b = jsonenc.AppendString(b, x.Denom)
	b = append(b, `,"decimal":`...)
	b = jsonenc.AppendString(b, x.Decimal)
	if x.Exact != `` {
		b = append(b, `,"exact":`...)
		b = jsonenc.AppendString(b, x.Exact)
	}
	b = append(b, `,"float":`...)
	b = jsonenc.AppendFloat64(b, x.Float)
	return append(b, '}')
}

// AppendJSON appends x as a JSON object.
func (x *Rounding) AppendJSON(b []byte) []byte {
	b = append(b, `{"ratio":`...)
	b = jsonenc.AppendString(b, x.Ratio)
	b = append(b, `,"floor":`...)
	b = jsonenc.AppendString(b, x.Floor)
	b = append(b, `,"ceil":`...)
	b = jsonenc.AppendString(b, x.Ceil)
	b = append(b, `,"trunc":`...)
	b = jsonenc.AppendString(b, x.Trunc)
	b = append(b, `,"round":`...)
	b = jsonenc.AppendString(b, x.Round)
	b = append(b, `,"half_even":`...)
	b = jsonenc.AppendString(b, x.HalfEven)
	return append(b, '}')
}
