package codec

import (
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/unkn0wn-root/csvfield/field"
)

// Text adapts a field codec to a byte Codec: the payload is the field text.
type Text[V any] struct {
	// Field is the field codec. It must be set.
	Field field.Codec[V]
	// MaxDecode caps the payload length in bytes; 0 => unlimited.
	MaxDecode int
}

var _ Codec[[]int] = Text[[]int]{}

func (c Text[V]) raw() LimitCodec[string] {
	return LimitCodec[string]{Inner: String{}, MaxDecode: c.MaxDecode}
}

func (c Text[V]) Encode(v V) ([]byte, error) { return c.raw().Encode(c.Field.Encode(v)) }

func (c Text[V]) Decode(b []byte) (V, error) {
	s, err := c.raw().Decode(b)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Field.Decode(s)
}

// TextProto carries a field's text inside a google.protobuf.StringValue,
// for transports that only accept protobuf messages.
type TextProto[V any] struct {
	// Field is the field codec. It must be set.
	Field field.Codec[V]
	// MaxDecode caps the protobuf payload length in bytes; 0 => unlimited.
	MaxDecode int
}

var _ Codec[[]int] = TextProto[[]int]{}

func (c TextProto[V]) messages() LimitCodec[*wrapperspb.StringValue] {
	return LimitCodec[*wrapperspb.StringValue]{
		Inner:     NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} }),
		MaxDecode: c.MaxDecode,
	}
}

func (c TextProto[V]) Encode(v V) ([]byte, error) {
	return c.messages().Encode(wrapperspb.String(c.Field.Encode(v)))
}

func (c TextProto[V]) Decode(b []byte) (V, error) {
	m, err := c.messages().Decode(b)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Field.Decode(m.GetValue())
}
