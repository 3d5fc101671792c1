package ratio

import (
	"iter"
)

// Sum returns the sum of the values in seq, or zero if seq is empty.
func Sum[T any, I Integer[T]](seq iter.Seq[Ratio[T, I]]) Ratio[T, I] {
	sum := Zero[T, I]()
	for v := range seq {
		sum.AddAssign(v)
	}
	return sum
}

// Product returns the product of the values in seq, or one if seq is empty.
func Product[T any, I Integer[T]](seq iter.Seq[Ratio[T, I]]) Ratio[T, I] {
	product := One[T, I]()
	for v := range seq {
		product.MulAssign(v)
	}
	return product
}
