// Package integer implements the integer capability consumed by
// [github.com/joeycumines/go-ratio], for fixed-width machine integers
// ([Fixed]) and arbitrary-precision integers ([Big]).
//
// The types in this package are zero-size "ops" values. They carry no state,
// and exist only to attach the operations to a type parameter, e.g.
// ratio.Ratio[int64, integer.Fixed[int64]].
//
// Plain arithmetic on [Fixed] wraps, exactly like the Go operators. Use the
// Checked* methods where overflow must be detected.
package integer
