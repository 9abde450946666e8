// Package codec moves values and whole records over binary transports.
// Field types from package csvfield serialize through these codecs as their
// field text, so a record encoded with JSON, CBOR or Msgpack keeps the same
// "-1_1" / "16x1024" strings it has in a CSV file.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
