package csvfield

import (
	"encoding"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Field types carry their text form into every host format: as a string
// through encoding.TextMarshaler (encoding/json, CSV struct mappers), as a
// msgpack str and as a CBOR text string.
type textField interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

func encodeMsgpack(enc *msgpack.Encoder, m encoding.TextMarshaler) error {
	b, err := m.MarshalText()
	if err != nil {
		return err
	}
	return enc.EncodeString(string(b))
}

func decodeMsgpack(dec *msgpack.Decoder, u encoding.TextUnmarshaler) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}

func marshalCBOR(m encoding.TextMarshaler) ([]byte, error) {
	b, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(string(b))
}

func unmarshalCBOR(data []byte, u encoding.TextUnmarshaler) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}
