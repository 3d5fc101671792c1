package ratio

import (
	"math"
	"math/big"
	"slices"
	"testing"

	"github.com/joeycumines/go-ratio/integer"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRatio_Cmp_overflow(t *testing.T) {
	large := ru8(128, 1)
	assert.Equal(t, 1, large.Cmp(large.Recip()))
	assert.Equal(t, -1, large.Recip().Cmp(large))

	// ascending, and close enough that cross-multiplication would overflow
	values := [...]Rational8{
		r8(125, 127),
		r8(63, 64),
		r8(124, 125),
		r8(125, 126),
		r8(126, 127),
		r8(127, 126),
	}
	for i, a := range values {
		assert.Equal(t, 0, a.Cmp(a))
		assert.Equal(t, -1, a.Neg().Cmp(a))
		for _, b := range values[i+1:] {
			assert.Equal(t, -1, a.Cmp(b), `%s < %s`, a, b)
			assert.Equal(t, 1, a.Neg().Cmp(b.Neg()), `-%s > -%s`, a, b)
			assert.Equal(t, 1, a.Recip().Cmp(b.Recip()), `1/%s > 1/%s`, a, b)
			assert.Equal(t, -1, a.Recip().Neg().Cmp(b.Recip().Neg()), `-1/%s < -1/%s`, a, b)
		}
	}
}

func TestRatio_Cmp_unreduced(t *testing.T) {
	for _, tt := range [...]struct {
		a, b Rational8
		want int
	}{
		{NewRaw[int8, integer.Int8](0, 2), NewRaw[int8, integer.Int8](0, 3), 0},
		{NewRaw[int8, integer.Int8](0, -2), r8(0, 1), 0},
		{NewRaw[int8, integer.Int8](4, 2), NewRaw[int8, integer.Int8](6, 3), 0},
		{NewRaw[int8, integer.Int8](1, -2), r8(-1, 2), 0},
		{NewRaw[int8, integer.Int8](1, -2), r8(1, 3), -1},
		{NewRaw[int8, integer.Int8](1, -2), NewRaw[int8, integer.Int8](1, -3), -1},
		{NewRaw[int8, integer.Int8](-1, -2), NewRaw[int8, integer.Int8](1, 3), 1},
		{NewRaw[int8, integer.Int8](3, -2), NewRaw[int8, integer.Int8](-3, 2), 0},
		{NewRaw[int8, integer.Int8](-3, 2), NewRaw[int8, integer.Int8](-5, 4), -1},
		{NewRaw[int8, integer.Int8](-1, 2), NewRaw[int8, integer.Int8](-1, -3), -1},
		{r8(3, 1), NewRaw[int8, integer.Int8](3, -1), 1},
		{r8(-7, 1), NewRaw[int8, integer.Int8](-7, -1), -1},
		{NewRaw[int8, integer.Int8](5, -3), NewRaw[int8, integer.Int8](5, 7), -1},
	} {
		assert.Equal(t, tt.want, tt.a.Cmp(tt.b), `%s cmp %s`, tt.a, tt.b)
		assert.Equal(t, -tt.want, tt.b.Cmp(tt.a), `%s cmp %s`, tt.b, tt.a)
		assert.Equal(t, tt.want == 0, tt.a.Equal(tt.b))
		assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
	}
}

func TestRatio_Cmp_big(t *testing.T) {
	a := NewBig(bigInt(t, `123456789012345678901234567890`), bigInt(t, `987654321098765432109876543211`))
	b := NewBig(bigInt(t, `123456789012345678901234567891`), bigInt(t, `987654321098765432109876543211`))
	c := NewBig(bigInt(t, `123456789012345678901234567890`), bigInt(t, `987654321098765432109876543210`))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, 1, b.Cmp(c))
	assert.Equal(t, a.BigRat().Cmp(c.BigRat()), a.Cmp(c))
}

func TestCompare_sort(t *testing.T) {
	values := []Rational64{New64(1, 2), New64(-7, 3), New64(5, 1), New64(0, 1), New64(1, 3), New64(-1, 2)}
	slices.SortFunc(values, Compare)
	var s []string
	for _, v := range values {
		s = append(s, v.String())
	}
	assert.Equal(t, []string{`-7/3`, `-1/2`, `0`, `1/3`, `1/2`, `5`}, s)
	assert.Equal(t, `-7/3`, Min(values[3], values[0]).String())
	assert.Equal(t, `5`, Max(values[5], values[0]).String())
	assert.Equal(t, `1/2`, Max(New64(1, 2), New64(2, 4)).String())
}

func countTerms[T any, I Integer[T]](x Ratio[T, I]) (n int) {
	for range x.Terms() {
		n++
	}
	return
}

func genRaw8() *rapid.Generator[Rational8] {
	return rapid.Custom(func(t *rapid.T) Rational8 {
		n := rapid.Int8Range(-127, 127).Draw(t, `n`)
		d := rapid.Int8Range(-127, 127).Filter(func(v int8) bool { return v != 0 }).Draw(t, `d`)
		return NewRaw[int8, integer.Int8](n, d)
	})
}

func genRaw64() *rapid.Generator[Rational64] {
	return rapid.Custom(func(t *rapid.T) Rational64 {
		// math.MinInt64 / -1 overflows
		n := rapid.Int64Min(math.MinInt64 + 1).Draw(t, `n`)
		d := rapid.Int64Min(math.MinInt64 + 1).Filter(func(v int64) bool { return v != 0 }).Draw(t, `d`)
		return NewRaw[int64, integer.Int64](n, d)
	})
}

func TestRatio_Cmp_property(t *testing.T) {
	for _, tc := range [...]struct {
		name string
		gen  *rapid.Generator[Rational64]
	}{
		{`int8`, rapid.Map(genRaw8(), func(v Rational8) Rational64 {
			return NewRaw[int64, integer.Int64](int64(v.numer), int64(v.denom))
		})},
		{`int64`, genRaw64()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				a := tc.gen.Draw(t, `a`)
				b := tc.gen.Draw(t, `b`)
				c, steps := a.cmp(b)
				if want := a.BigRat().Cmp(b.BigRat()); c != want {
					t.Fatalf(`%s cmp %s: got %d, want %d`, a, b, c, want)
				}
				if rc, _ := b.cmp(a); rc != -c {
					t.Fatalf(`%s cmp %s: not antisymmetric`, a, b)
				}
				if limit := min(countTerms(a), countTerms(b)); steps > limit {
					t.Fatalf(`%s cmp %s: %d steps, exceeds %d terms`, a, b, steps, limit)
				}
			})
		})
	}
}

func TestRatio_Cmp_int8Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := genRaw8().Draw(t, `a`)
		b := genRaw8().Draw(t, `b`)
		want := big.NewRat(int64(a.numer), int64(a.denom)).Cmp(big.NewRat(int64(b.numer), int64(b.denom)))
		if c := a.Cmp(b); c != want {
			t.Fatalf(`%s cmp %s: got %d, want %d`, a, b, c, want)
		}
	})
}
