package ratio_test

import (
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/joeycumines/go-ratio"
	"github.com/joeycumines/go-ratio/integer"
)

func ExampleNew() {
	fmt.Println(ratio.New64(6, -4))
	fmt.Println(ratio.New[uint8, integer.Uint8](200, 100))
	fmt.Println(ratio.NewBig(big.NewInt(10), big.NewInt(4)))
	//output:
	//-3/2
	//2
	//5/2
}

func ExampleRatio_Cmp() {
	// 128 * 128 does not fit in a uint8, but comparison never multiplies
	a := ratio.New[uint8, integer.Uint8](128, 1)
	b := a.Recip()
	fmt.Println(a.Cmp(b), b.Cmp(a), a.Cmp(a))
	//output:
	//1 -1 0
}

func ExampleRatio_CheckedMul() {
	a := ratio.New[uint8, integer.Uint8](128, 1)
	_, ok := a.CheckedMul(a)
	fmt.Println(ok)
	v, ok := a.CheckedMul(a.Recip())
	fmt.Println(v, ok)
	//output:
	//false
	//1 true
}

func ExampleRatio_Round() {
	for _, v := range [...]ratio.Rational64{
		ratio.New64(1, 2),
		ratio.New64(-1, 2),
		ratio.New64(1, 3),
		ratio.New64(-5, 3),
	} {
		fmt.Println(v, v.Floor(), v.Ceil(), v.Trunc(), v.Round(), v.Fract())
	}
	//output:
	//1/2 0 1 0 1 1/2
	//-1/2 -1 0 0 -1 -1/2
	//1/3 0 1 0 0 1/3
	//-5/3 -2 -1 -1 -2 -2/3
}

func ExampleApproximate() {
	fmt.Println(ratio.Approximate[int32, integer.Int32](0.5))
	fmt.Println(ratio.Approximate[int64, integer.Int64](math.Pi, ratio.WithMaxError(1e-6)))
	_, ok := ratio.Approximate[int8, integer.Int8](127.5)
	fmt.Println(ok)
	fmt.Println(ratio.Approximate[*big.Int, integer.Big](math.Ldexp(1, 100)))
	//output:
	//1/2 true
	//355/113 true
	//false
	//1267650600228229401496703205376 true
}

func ExampleRatio_Terms() {
	fmt.Println(slices.Collect(ratio.New64(415, 93).Terms()))
	//output:
	//[4 2 6 7]
}

func ExampleParse() {
	for _, s := range [...]string{`3/2`, `-10/4`, `7`, `1/0`, `3/2/1`} {
		if r, err := ratio.Parse[int64, integer.Int64](s); err != nil {
			fmt.Println(err)
		} else {
			fmt.Println(r)
		}
	}
	//output:
	//3/2
	//-5/2
	//7
	//ratio: parse: zero value denominator
	//ratio: parse: failed to parse integer
}
