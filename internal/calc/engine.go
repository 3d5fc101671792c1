package calc

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/joeycumines/go-ratio"
	"github.com/joeycumines/go-ratio/floater"
	"github.com/joeycumines/go-ratio/integer"
)

func (x *engine[T, I]) parse(s string) (ratio.Ratio[T, I], error) {
	v, err := ratio.Parse[T, I](s)
	if err != nil {
		return v, fmt.Errorf(`calc: %s: invalid ratio %q: %w`, x.config.Type, s, err)
	}
	return v, nil
}

func (x *engine[T, I]) Parse(s string) (*Result, error) {
	v, err := x.parse(s)
	if err != nil {
		return nil, err
	}
	return x.result(v), nil
}

func (x *engine[T, I]) Eval(a, op, b string, checked bool) (result *Result, err error) {
	l, err := x.parse(a)
	if err != nil {
		return nil, err
	}
	r, err := x.parse(b)
	if err != nil {
		return nil, err
	}

	switch op {
	case `/`, `%`:
		if r.IsZero() {
			return nil, fmt.Errorf(`calc: %s %s %s: %w`, a, op, b, ratio.ErrDivisionByZero)
		}
	}

	var v ratio.Ratio[T, I]
	if checked {
		var ok bool
		switch op {
		case `+`:
			v, ok = l.CheckedAdd(r)
		case `-`:
			v, ok = l.CheckedSub(r)
		case `*`:
			v, ok = l.CheckedMul(r)
		case `/`:
			v, ok = l.CheckedDiv(r)
		case `%`:
			v, ok = checkedRem(l, r)
		default:
			return nil, fmt.Errorf(`%w: %q`, ErrUnknownOperator, op)
		}
		if !ok {
			return nil, fmt.Errorf(`calc: %s %s %s: %w`, a, op, b, ErrOverflow)
		}
	} else {
		// wrapping may produce a zero denominator
		defer func() {
			if rec := recover(); rec != nil {
				if e, ok := rec.(error); ok && errors.Is(e, ratio.ErrZeroDenominator) {
					result, err = nil, fmt.Errorf(`calc: %s %s %s: %w`, a, op, b, e)
					return
				}
				panic(rec)
			}
		}()
		switch op {
		case `+`:
			v = l.Add(r)
		case `-`:
			v = l.Sub(r)
		case `*`:
			v = l.Mul(r)
		case `/`:
			v = l.Div(r)
		case `%`:
			v = l.Rem(r)
		default:
			return nil, fmt.Errorf(`%w: %q`, ErrUnknownOperator, op)
		}
	}

	if b := x.config.Logger.Debug(); b.Enabled() {
		b.Str(`type`, x.config.Type).
			Stringer(`left`, l).
			Str(`op`, op).
			Stringer(`right`, r).
			Stringer(`result`, v).
			Bool(`checked`, checked).
			Log(`calc: eval`)
	}

	return x.result(v), nil
}

// checkedRem has no native equivalent, so it evaluates exactly then narrows
func checkedRem[T any, I ratio.Integer[T]](l, r ratio.Ratio[T, I]) (ratio.Ratio[T, I], bool) {
	bl, err := ratio.Convert[*big.Int, integer.Big](l)
	if err != nil {
		return ratio.Ratio[T, I]{}, false
	}
	br, err := ratio.Convert[*big.Int, integer.Big](r)
	if err != nil {
		return ratio.Ratio[T, I]{}, false
	}
	v, err := ratio.Convert[T, I](bl.Rem(br))
	return v, err == nil
}

func (x *engine[T, I]) Cmp(a, b string) (int, error) {
	l, err := x.parse(a)
	if err != nil {
		return 0, err
	}
	r, err := x.parse(b)
	if err != nil {
		return 0, err
	}
	return l.Cmp(r), nil
}

func (x *engine[T, I]) Approx(v float64) (*Result, error) {
	opts := []ratio.ApproxOption{ratio.WithLogger(x.config.Logger)}
	if x.config.MaxError > 0 {
		opts = append(opts, ratio.WithMaxError(x.config.MaxError))
	}
	if x.config.MaxIterations > 0 {
		opts = append(opts, ratio.WithMaxIterations(x.config.MaxIterations))
	}
	r, ok := ratio.Approximate[T, I](v, opts...)
	if !ok {
		return nil, fmt.Errorf(`%w: %v as %s`, ErrNoApproximation, v, x.config.Type)
	}
	return x.result(r), nil
}

func (x *engine[T, I]) Terms(s string) ([]string, error) {
	v, err := x.parse(s)
	if err != nil {
		return nil, err
	}
	var (
		o     I
		terms []string
	)
	for t := range v.Terms() {
		terms = append(terms, string(o.Append(nil, t, 10)))
	}
	return terms, nil
}

func (x *engine[T, I]) Round(s string) (*Rounding, error) {
	v, err := x.parse(s)
	if err != nil {
		return nil, err
	}
	halfEven, err := floater.Round(v, x.config.Places)
	if err != nil {
		return nil, fmt.Errorf(`calc: round %s to %d places: %w`, v, x.config.Places, err)
	}
	return &Rounding{
		Ratio:    v.String(),
		Floor:    v.Floor().String(),
		Ceil:     v.Ceil().String(),
		Trunc:    v.Trunc().String(),
		Round:    v.Round().String(),
		HalfEven: floater.FormatDecimal(halfEven, max(x.config.Places, 0)),
	}, nil
}

func (x *engine[T, I]) result(v ratio.Ratio[T, I]) *Result {
	var o I
	f, _ := v.Float64()
	exact, _ := floater.FormatExact(v)
	return &Result{
		Type:    x.config.Type,
		Ratio:   v.String(),
		Numer:   string(o.Append(nil, v.Numer(), 10)),
		Denom:   string(o.Append(nil, v.Denom(), 10)),
		Decimal: floater.FormatDecimal(v, x.config.Places),
		Exact:   exact,
		Float:   f,
	}
}
