package ratio

import (
	"io"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Terms yields the (floor) continued fraction expansion of x, i.e.
// [a0; a1, a2, ...], the same for every representation of a given value.
func (x Ratio[T, I]) Terms() iter.Seq[T] {
	return func(yield func(T) bool) {
		var o I
		n, d := x.numer, x.denom
		for o.Sign(d) != 0 {
			q, m := o.DivModFloor(n, d)
			if !yield(q) {
				return
			}
			n, d = d, m
		}
	}
}

// AppendKey appends the canonical key of x to b. Values compare equal if and
// only if their keys are equal, making the key suitable for use as a map key
// (see [Ratio.Key]) or as hash input.
func (x Ratio[T, I]) AppendKey(b []byte) []byte {
	var o I
	for q := range x.Terms() {
		b = o.Append(b, q, 36)
		b = append(b, ';')
	}
	// the terminal divisor, always zero
	return append(b, '0')
}

// Key returns [Ratio.AppendKey] as a string.
func (x Ratio[T, I]) Key() string {
	return string(x.AppendKey(nil))
}

// Hash64 returns the xxhash of [Ratio.AppendKey], consistent with
// [Ratio.Equal].
func (x Ratio[T, I]) Hash64() uint64 {
	var buf [64]byte
	return xxhash.Sum64(x.AppendKey(buf[:0]))
}

// WriteHash writes the key of x to h, which is typically a [hash.Hash].
func (x Ratio[T, I]) WriteHash(h io.Writer) error {
	var buf [64]byte
	_, err := h.Write(x.AppendKey(buf[:0]))
	return err
}
