package ratio

import (
	"encoding/json"
	"fmt"

	"github.com/joeycumines/go-utilpkg/jsonenc"
	"github.com/vmihailenco/msgpack/v4"
)

// MarshalJSON encodes x as a JSON string, e.g. "-3/2".
func (x Ratio[T, I]) MarshalJSON() ([]byte, error) {
	var buf [64]byte
	return jsonenc.AppendString(nil, string(x.Append(buf[:0], 10))), nil
}

// UnmarshalJSON decodes a JSON string, using [Parse].
func (x *Ratio[T, I]) UnmarshalJSON(b []byte) error {
	var s string
	if len(b) == 0 || b[0] != '"' {
		return fmt.Errorf(`ratio: invalid json value: %s`, b)
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return x.UnmarshalText([]byte(s))
}

// EncodeMsgpack implements [msgpack.CustomEncoder], encoding x as the array
// [numer, denom]. Components are encoded as integers if they fit in 64 bits,
// otherwise as base 10 strings.
func (x Ratio[T, I]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := encodeMsgpackInteger[T, I](enc, x.numer); err != nil {
		return err
	}
	return encodeMsgpackInteger[T, I](enc, x.denom)
}

// DecodeMsgpack implements [msgpack.CustomDecoder]. It is the inverse of
// [Ratio.EncodeMsgpack], and rejects a zero denominator, per [FromPair].
func (x *Ratio[T, I]) DecodeMsgpack(dec *msgpack.Decoder) error {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if l != 2 {
		return fmt.Errorf(`ratio: msgpack: invalid array length: %d`, l)
	}
	numer, err := decodeMsgpackInteger[T, I](dec)
	if err != nil {
		return err
	}
	denom, err := decodeMsgpackInteger[T, I](dec)
	if err != nil {
		return err
	}
	v, err := FromPair[T, I](numer, denom)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func encodeMsgpackInteger[T any, I Integer[T]](enc *msgpack.Encoder, v T) error {
	var o I
	if i, ok := o.Int64(v); ok {
		return enc.EncodeInt(i)
	}
	if u, ok := o.Uint64(v); ok {
		return enc.EncodeUint(u)
	}
	return enc.EncodeString(string(o.Append(nil, v, 10)))
}

func decodeMsgpackInteger[T any, I Integer[T]](dec *msgpack.Decoder) (T, error) {
	var o I
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return o.Zero(), err
	}
	var (
		t  T
		ok bool
	)
	switch v := v.(type) {
	case int64:
		t, ok = o.FromInt64(v)
	case uint64:
		t, ok = o.FromUint64(v)
	case string:
		t, err = o.Parse(v, 10)
		ok = err == nil
	default:
		return o.Zero(), fmt.Errorf(`ratio: msgpack: unexpected %T`, v)
	}
	if !ok {
		return o.Zero(), &ParseError{Kind: KindMalformed}
	}
	return t, nil
}
