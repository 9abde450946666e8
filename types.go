package csvfield

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/exp/constraints"

	"github.com/unkn0wn-root/csvfield/field"
)

var (
	_ textField = (*List[int])(nil)
	_ textField = (*Rows[int])(nil)
	_ textField = (*Size[uint8, uint16])(nil)
	_ textField = (*Geo[float32])(nil)
	_ textField = (*OptionalSize[uint8, uint16])(nil)
	_ textField = (*OptionalGeo[float32])(nil)

	_ msgpack.CustomEncoder = List[int]{}
	_ msgpack.CustomDecoder = (*List[int])(nil)
	_ cbor.Marshaler        = List[int]{}
	_ cbor.Unmarshaler      = (*List[int])(nil)
)

// List is a signed integer list stored as "-1_1". Empty lists are "".
type List[T constraints.Signed] []T

func (l List[T]) MarshalText() ([]byte, error) {
	return []byte(field.Sequence[T]{}.Encode(l)), nil
}

func (l *List[T]) UnmarshalText(b []byte) error {
	v, err := field.Sequence[T]{}.Decode(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l List[T]) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, l) }
func (l *List[T]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, l) }
func (l List[T]) MarshalCBOR() ([]byte, error)              { return marshalCBOR(l) }
func (l *List[T]) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(b, l) }

// Rows is a list of signed integer lists stored as "-1_1|1_-1".
// Zero rows are "".
type Rows[T constraints.Signed] [][]T

func (r Rows[T]) MarshalText() ([]byte, error) {
	return []byte(field.Matrix[T]{}.Encode(r)), nil
}

func (r *Rows[T]) UnmarshalText(b []byte) error {
	v, err := field.Matrix[T]{}.Decode(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (r Rows[T]) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, r) }
func (r *Rows[T]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, r) }
func (r Rows[T]) MarshalCBOR() ([]byte, error)              { return marshalCBOR(r) }
func (r *Rows[T]) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(b, r) }

// Size is an unsigned (width, height) pair stored as "16x1024".
type Size[W, H constraints.Unsigned] struct {
	Width  W
	Height H
}

func (s Size[W, H]) pair() field.Pair[W, H] {
	return field.Pair[W, H]{First: s.Width, Second: s.Height}
}

func sizeOf[W, H constraints.Unsigned](p field.Pair[W, H]) Size[W, H] {
	return Size[W, H]{Width: p.First, Height: p.Second}
}

func (s Size[W, H]) String() string { return field.Dimension[W, H]{}.Encode(s.pair()) }

func (s Size[W, H]) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Size[W, H]) UnmarshalText(b []byte) error {
	p, err := field.Dimension[W, H]{}.Decode(string(b))
	if err != nil {
		return err
	}
	*s = sizeOf(p)
	return nil
}

func (s Size[W, H]) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, s) }
func (s *Size[W, H]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, s) }
func (s Size[W, H]) MarshalCBOR() ([]byte, error)              { return marshalCBOR(s) }
func (s *Size[W, H]) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(b, s) }

// Geo is a (lat, lon) pair stored as "84.99;-135".
type Geo[F constraints.Float] struct {
	Lat F
	Lon F
}

func (g Geo[F]) pair() field.Pair[F, F] {
	return field.Pair[F, F]{First: g.Lat, Second: g.Lon}
}

func geoOf[F constraints.Float](p field.Pair[F, F]) Geo[F] {
	return Geo[F]{Lat: p.First, Lon: p.Second}
}

func (g Geo[F]) String() string { return field.Coordinate[F]{}.Encode(g.pair()) }

func (g Geo[F]) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *Geo[F]) UnmarshalText(b []byte) error {
	p, err := field.Coordinate[F]{}.Decode(string(b))
	if err != nil {
		return err
	}
	*g = geoOf(p)
	return nil
}

func (g Geo[F]) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, g) }
func (g *Geo[F]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, g) }
func (g Geo[F]) MarshalCBOR() ([]byte, error)              { return marshalCBOR(g) }
func (g *Geo[F]) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(b, g) }
