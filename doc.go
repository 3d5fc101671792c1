// Package ratio implements an exact rational number type, [Ratio], generic
// over the integer type backing its numerator and denominator.
//
// The backing type is supplied as a pair of type parameters: the integer type
// T, and a zero-size type I implementing [Integer] for T. Implementations for
// machine integers and [math/big.Int] are provided by
// [github.com/joeycumines/go-ratio/integer], and the common instantiations
// have aliases, e.g. [Rational64] and [BigRational].
//
// Ratio values are immutable, except via the *Assign methods, which replace
// the receiver as a whole. Values created via [New] (and every arithmetic
// operation) are reduced to lowest terms, with a positive denominator.
// Comparison, equality, and hashing treat unreduced values (see [NewRaw]) as
// equal to their reduced form, and never overflow.
//
// The zero value is NOT a valid Ratio (its denominator is zero), and should
// only be used as the target of an unmarshal.
package ratio
