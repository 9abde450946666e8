package csvfield

import (
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/exp/constraints"

	"github.com/unkn0wn-root/csvfield/field"
)

func sizeCodec[W, H constraints.Unsigned]() field.Optional[field.Pair[W, H]] {
	return field.Optional[field.Pair[W, H]]{Inner: field.Dimension[W, H]{}}
}

func geoCodec[F constraints.Float]() field.Optional[field.Pair[F, F]] {
	return field.Optional[field.Pair[F, F]]{Inner: field.Coordinate[F]{}}
}

// OptionalSize is a Size that may be absent. Absent is the empty field.
type OptionalSize[W, H constraints.Unsigned] struct {
	Size  Size[W, H]
	Valid bool
}

// SomeSize returns a present OptionalSize.
func SomeSize[W, H constraints.Unsigned](width W, height H) OptionalSize[W, H] {
	return OptionalSize[W, H]{Size: Size[W, H]{Width: width, Height: height}, Valid: true}
}

// Get returns the size and whether it is present.
func (o OptionalSize[W, H]) Get() (Size[W, H], bool) { return o.Size, o.Valid }

func (o OptionalSize[W, H]) MarshalText() ([]byte, error) {
	opt := field.Option[field.Pair[W, H]]{Value: o.Size.pair(), Valid: o.Valid}
	return []byte(sizeCodec[W, H]().Encode(opt)), nil
}

func (o *OptionalSize[W, H]) UnmarshalText(b []byte) error {
	opt, err := sizeCodec[W, H]().Decode(string(b))
	if err != nil {
		return err
	}
	*o = OptionalSize[W, H]{Size: sizeOf(opt.Value), Valid: opt.Valid}
	return nil
}

func (o OptionalSize[W, H]) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, o) }
func (o *OptionalSize[W, H]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, o) }
func (o OptionalSize[W, H]) MarshalCBOR() ([]byte, error)              { return marshalCBOR(o) }
func (o *OptionalSize[W, H]) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(b, o) }

// OptionalGeo is a Geo that may be absent. Absent is the empty field.
type OptionalGeo[F constraints.Float] struct {
	Geo   Geo[F]
	Valid bool
}

// SomeGeo returns a present OptionalGeo.
func SomeGeo[F constraints.Float](lat, lon F) OptionalGeo[F] {
	return OptionalGeo[F]{Geo: Geo[F]{Lat: lat, Lon: lon}, Valid: true}
}

// Get returns the coordinates and whether they are present.
func (o OptionalGeo[F]) Get() (Geo[F], bool) { return o.Geo, o.Valid }

func (o OptionalGeo[F]) MarshalText() ([]byte, error) {
	opt := field.Option[field.Pair[F, F]]{Value: o.Geo.pair(), Valid: o.Valid}
	return []byte(geoCodec[F]().Encode(opt)), nil
}

func (o *OptionalGeo[F]) UnmarshalText(b []byte) error {
	opt, err := geoCodec[F]().Decode(string(b))
	if err != nil {
		return err
	}
	*o = OptionalGeo[F]{Geo: geoOf(opt.Value), Valid: opt.Valid}
	return nil
}

func (o OptionalGeo[F]) EncodeMsgpack(enc *msgpack.Encoder) error  { return encodeMsgpack(enc, o) }
func (o *OptionalGeo[F]) DecodeMsgpack(dec *msgpack.Decoder) error { return decodeMsgpack(dec, o) }
func (o OptionalGeo[F]) MarshalCBOR() ([]byte, error)              { return marshalCBOR(o) }
func (o *OptionalGeo[F]) UnmarshalCBOR(b []byte) error             { return unmarshalCBOR(b, o) }
