package field

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Pair is an ordered two-component value: (width, height) for Dimension,
// (lat, lon) for Coordinate.
type Pair[A, B any] struct {
	First  A
	Second B
}

// splitPair splits s on sep and requires exactly two parts.
func splitPair(s, sep string) (string, string, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Dimension is a Codec for unsigned (width, height) pairs, e.g. image sizes.
// The zero value is ready to use. Out of range components are rejected by
// parsing with the bit size of W and H. Decode accepts a leading '+' on
// either component, as Sequence does for its elements.
//
//	Pair[uint8, uint16]{16, 1024} <-> "16x1024"
//
// Dimension has no absent form; wrap it in Optional for that.
type Dimension[W, H constraints.Unsigned] struct{}

var _ Codec[Pair[uint8, uint16]] = Dimension[uint8, uint16]{}

func (Dimension[W, H]) Encode(p Pair[W, H]) string {
	b := make([]byte, 0, 12)
	b = strconv.AppendUint(b, uint64(p.First), 10)
	b = append(b, DimensionSep...)
	b = strconv.AppendUint(b, uint64(p.Second), 10)
	return string(b)
}

func (Dimension[W, H]) Decode(s string) (Pair[W, H], error) {
	ws, hs, ok := splitPair(s, DimensionSep)
	if !ok {
		return Pair[W, H]{}, pairError(s, nil)
	}
	w, err := parseUnsigned(ws, bitSize[W]())
	if err != nil {
		return Pair[W, H]{}, pairError(s, err)
	}
	h, err := parseUnsigned(hs, bitSize[H]())
	if err != nil {
		return Pair[W, H]{}, pairError(s, err)
	}
	return Pair[W, H]{First: W(w), Second: H(h)}, nil
}

// Coordinate is a Codec for floating point (lat, lon) pairs.
// The zero value is ready to use. Components are rendered in the shortest
// decimal form that parses back to the same value, without exponent,
// trailing zeros or a trailing point. Decode also accepts a leading '+' and
// an exponent ("1e3"), but not hexadecimal floats. No range checks are applied.
//
//	Pair[float32, float32]{84.99, -135.00} <-> "84.99;-135"
type Coordinate[F constraints.Float] struct{}

var _ Codec[Pair[float64, float64]] = Coordinate[float64]{}

func (Coordinate[F]) Encode(p Pair[F, F]) string {
	bits := bitSize[F]()
	b := make([]byte, 0, 24)
	b = strconv.AppendFloat(b, float64(p.First), 'f', -1, bits)
	b = append(b, CoordinateSep...)
	b = strconv.AppendFloat(b, float64(p.Second), 'f', -1, bits)
	return string(b)
}

func (Coordinate[F]) Decode(s string) (Pair[F, F], error) {
	las, los, ok := splitPair(s, CoordinateSep)
	if !ok {
		return Pair[F, F]{}, pairError(s, nil)
	}
	bits := bitSize[F]()
	lat, err := parseFloat(las, bits)
	if err != nil {
		return Pair[F, F]{}, pairError(s, err)
	}
	lon, err := parseFloat(los, bits)
	if err != nil {
		return Pair[F, F]{}, pairError(s, err)
	}
	return Pair[F, F]{First: F(lat), Second: F(lon)}, nil
}
