package ratio

import (
	"math"

	"github.com/joeycumines/logiface"
	"golang.org/x/exp/constraints"
)

const (
	// DefaultMaxError is the default [WithMaxError].
	DefaultMaxError = 10e-20
	// DefaultMaxIterations is the default [WithMaxIterations].
	DefaultMaxIterations = 30
)

type (
	// ApproxOption configures [Approximate].
	ApproxOption func(c *approxConfig)

	approxConfig struct {
		logger        *logiface.Logger[logiface.Event]
		maxError      float64
		maxIterations int
	}
)

// WithMaxError stops the approximation once a convergent is within maxError
// of the input.
func WithMaxError(maxError float64) ApproxOption {
	return func(c *approxConfig) { c.maxError = maxError }
}

// WithMaxIterations limits the number of continued fraction terms computed.
func WithMaxIterations(maxIterations int) ApproxOption {
	return func(c *approxConfig) { c.maxIterations = maxIterations }
}

// WithLogger logs each convergent, and the reason for stopping, at trace
// level.
func WithLogger(logger *logiface.Logger[logiface.Event]) ApproxOption {
	return func(c *approxConfig) { c.logger = logger }
}

// Approximate returns the best rational approximation of v, within the
// error and iteration limits (see [DefaultMaxError] and
// [DefaultMaxIterations]), using continued fractions.
//
// False is returned if v is NaN, infinite, negative while T is unsigned, or
// out of the range of T. The computation is performed in F, so float32
// values approximate as float32.
//
// For unbounded T, approximation continues until the error or iteration
// limit is reached, or the convergent is exact. See also [ExactFloat].
func Approximate[T any, I Integer[T], F constraints.Float](v F, opts ...ApproxOption) (Ratio[T, I], bool) {
	c := approxConfig{
		maxError:      DefaultMaxError,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&c)
	}

	var o I
	lo, _, bounded := o.Bounds()
	if !bounded || o.Sign(lo) < 0 {
		// approximate the magnitude, then restore the sign
		neg := math.Signbit(float64(v))
		if neg {
			v = -v
		}
		r, ok := approximate[T, I](v, &c)
		if ok && neg {
			r = r.Neg()
		}
		return r, ok
	}

	return approximate[T, I](v, &c)
}

func approximate[T any, I Integer[T], F constraints.Float](val F, c *approxConfig) (Ratio[T, I], bool) {
	if val < 0 || math.IsNaN(float64(val)) {
		return Ratio[T, I]{}, false
	}

	var o I
	_, hi, bounded := o.Bounds()

	var tMax, epsilon F
	if bounded {
		tMax = F(o.Float64(hi))
		if val > tMax {
			return Ratio[T, I]{}, false
		}
		epsilon = 1 / tMax
	} else if math.IsInf(float64(val), 0) {
		return Ratio[T, I]{}, false
	}

	maxError := F(c.maxError)
	q := val
	n0, d0 := o.Zero(), o.One()
	n1, d1 := o.One(), o.Zero()

	var reason string
	for i := 0; ; i++ {
		if i >= c.maxIterations {
			reason = `iterations`
			break
		}

		a, ok := o.FromFloat64(float64(q))
		if !ok {
			reason = `term`
			break
		}
		f := q - F(o.Float64(a))

		// stop before a*n1 + n0 or a*d1 + d0 overflows
		if bounded && o.Sign(a) != 0 {
			lim := o.Quo(hi, a)
			if o.Cmp(n1, lim) > 0 ||
				o.Cmp(d1, lim) > 0 ||
				o.Cmp(o.Mul(a, n1), o.Sub(hi, n0)) > 0 ||
				o.Cmp(o.Mul(a, d1), o.Sub(hi, d0)) > 0 {
				reason = `overflow`
				break
			}
		}

		n := o.Add(o.Mul(a, n1), n0)
		d := o.Add(o.Mul(a, d1), d0)

		n0, d0 = n1, d1
		n1, d1 = n, d

		if g := o.GCD(n1, d1); o.Sign(g) != 0 {
			n1, d1 = o.Quo(n1, g), o.Quo(d1, g)
		}

		if b := c.logger.Trace(); b.Enabled() {
			b.Int(`iteration`, i).
				Str(`numer`, string(o.Append(nil, n1, 10))).
				Str(`denom`, string(o.Append(nil, d1, 10))).
				Log(`ratio: approximate: convergent`)
		}

		nf, df := F(o.Float64(n)), F(o.Float64(d))
		if e := nf/df - val; e < maxError && -e < maxError {
			reason = `error`
			break
		}

		if f < epsilon || (!bounded && f == 0) {
			reason = `exact`
			break
		}
		q = 1 / f
	}

	c.logger.Trace().
		Str(`reason`, reason).
		Float64(`value`, float64(val)).
		Log(`ratio: approximate: stopped`)

	if o.Sign(d1) == 0 {
		return Ratio[T, I]{}, false
	}

	return New[T, I](n1, d1), true
}
