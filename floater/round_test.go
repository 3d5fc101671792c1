package floater

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/joeycumines/go-ratio"
	"github.com/joeycumines/go-ratio/integer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func ExampleRound() {
	p := func(s string, prec int) {
		x, err := ratio.Parse[*big.Int, integer.Big](s)
		if err != nil {
			panic(err)
		}
		v, err := Round(x, prec)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%q, %d: %s\n", s, prec, v)
	}

	p(`0`, 0)
	p(`5/101`, 1)
	p(`-17174554827281306677/34482764`, 9)
	p(`3/2`, 0)
	p(`3/20`, 1)
	p(`15`, -1)
	p(`21/20`, 1)
	p(`23/20`, 1)
	p(`39/20`, 1)
	p(`37/20`, 1)
	p(`5/4`, 1)
	p(`5/2`, 0)
	p(`-5/2`, 0)
	p(`27/20`, 1)
	p(`-27/20`, 1)
	p(`1250`, -2)
	p(`1350`, -2)

	//output:
	//"0", 0: 0
	//"5/101", 1: 0
	//"-17174554827281306677/34482764", 9: -498062012293483975849/1000000000
	//"3/2", 0: 2
	//"3/20", 1: 1/5
	//"15", -1: 20
	//"21/20", 1: 1
	//"23/20", 1: 6/5
	//"39/20", 1: 2
	//"37/20", 1: 9/5
	//"5/4", 1: 6/5
	//"5/2", 0: 2
	//"-5/2", 0: -2
	//"27/20", 1: 7/5
	//"-27/20", 1: -7/5
	//"1250", -2: 1200
	//"1350", -2: 1400
}

func TestRound_overflow(t *testing.T) {
	_, err := Round(ratio.New[int8, integer.Int8](1, 3), 3)
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	_, err = Round(ratio.New[int8, integer.Int8](127, 1), -1)
	assert.ErrorIs(t, err, ratio.ErrOverflow)

	v, err := Round(ratio.New[int8, integer.Int8](127, 2), 0)
	require.NoError(t, err)
	assert.Equal(t, `64`, v.String())

	v, err = Round(ratio.New[int8, integer.Int8](1, 3), 2)
	require.NoError(t, err)
	assert.Equal(t, `33/100`, v.String())
}

// half-to-even never differs from half-away-from-zero (ratio.Ratio.Round)
// by more than one, and only on ties
func TestRound_property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int32().Draw(t, `n`)
		d := rapid.Int32Range(1, 1<<20).Draw(t, `d`)
		x := ratio.New[int64, integer.Int64](int64(n), int64(d))
		even, err := Round(x, 0)
		if err != nil {
			t.Fatal(err)
		}
		away := x.Round()
		if even.Equal(away) {
			return
		}
		if !x.Sub(x.Floor()).Equal(ratio.New64(1, 2)) {
			t.Fatalf(`%s: %s != %s, not a tie`, x, even, away)
		}
		if even.Numer()%2 != 0 {
			t.Fatalf(`%s: %s is not even`, x, even)
		}
	})
}
