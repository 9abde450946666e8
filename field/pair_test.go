package field

import (
	"errors"
	"math"
	"testing"
)

func TestDimensionEncode(t *testing.T) {
	var c Dimension[uint8, uint16]
	if got := c.Encode(Pair[uint8, uint16]{16, 1024}); got != "16x1024" {
		t.Fatalf("Encode = %q", got)
	}
	if got := c.Encode(Pair[uint8, uint16]{math.MaxUint8, math.MaxUint16}); got != "255x65535" {
		t.Fatalf("Encode = %q", got)
	}
	if got := c.Encode(Pair[uint8, uint16]{}); got != "0x0" {
		t.Fatalf("Encode = %q", got)
	}
}

func TestDimensionRoundTrip(t *testing.T) {
	cases := []Pair[uint32, uint64]{
		{0, 0},
		{1, 2},
		{128, 64},
		{math.MaxUint32, math.MaxUint64},
	}
	var c Dimension[uint32, uint64]
	for _, in := range cases {
		got, err := c.Decode(c.Encode(in))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)): %v", in, err)
		}
		if got != in {
			t.Fatalf("round trip: got %v want %v", got, in)
		}
	}
}

func TestDimensionDecodeInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"12x",
		"x12",
		"16",
		"1x2x3",
		"16X1024",
		"-1x2",
		"256x1",   // width out of uint8 range
		"1x65536", // height out of uint16 range
		"a x b",
	} {
		_, err := (Dimension[uint8, uint16]{}).Decode(in)
		if !errors.Is(err, ErrInvalidPair) {
			t.Fatalf("Decode(%q): expected ErrInvalidPair, got %v", in, err)
		}
	}
}

func TestCoordinateEncodeMinimalDecimal(t *testing.T) {
	cases := []struct {
		in   Pair[float64, float64]
		want string
	}{
		{Pair[float64, float64]{84.99, -135.00}, "84.99;-135"},
		{Pair[float64, float64]{0, 0}, "0;0"},
		{Pair[float64, float64]{-1.1, 1.1}, "-1.1;1.1"},
		{Pair[float64, float64]{51.5, -0.125}, "51.5;-0.125"},
	}
	for _, tc := range cases {
		if got := (Coordinate[float64]{}).Encode(tc.in); got != tc.want {
			t.Fatalf("Encode(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}

	// float32 components render with float32 precision, not their float64 expansion.
	if got := (Coordinate[float32]{}).Encode(Pair[float32, float32]{84.99, -135.00}); got != "84.99;-135" {
		t.Fatalf("float32 Encode = %q", got)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	cases := []Pair[float32, float32]{
		{84.99, -135},
		{-1.1, 1.1},
		{0, 0},
		{math.MaxFloat32, -math.SmallestNonzeroFloat32},
	}
	var c Coordinate[float32]
	for _, in := range cases {
		got, err := c.Decode(c.Encode(in))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)): %v", in, err)
		}
		if got != in {
			t.Fatalf("round trip: got %v want %v", got, in)
		}
	}
}

func TestCoordinateDecodeInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"1",
		"1;",
		";1",
		"1;2;3",
		"a;1",
		"1,2",
	} {
		_, err := (Coordinate[float64]{}).Decode(in)
		if !errors.Is(err, ErrInvalidPair) {
			t.Fatalf("Decode(%q): expected ErrInvalidPair, got %v", in, err)
		}
	}
}

func TestDimensionDecodeLeadingPlus(t *testing.T) {
	got, err := (Dimension[uint8, uint16]{}).Decode("+16x+1024")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != (Pair[uint8, uint16]{16, 1024}) {
		t.Fatalf("got %v", got)
	}

	// sequences accept the same sign.
	seq, err := (Sequence[int32]{}).Decode("+1_-0")
	if err != nil || len(seq) != 2 || seq[0] != 1 || seq[1] != 0 {
		t.Fatalf("Sequence.Decode = %v, %v", seq, err)
	}

	for _, in := range []string{"+x1", "++1x1", "+-1x1", "1x+"} {
		if _, err := (Dimension[uint8, uint16]{}).Decode(in); !errors.Is(err, ErrInvalidPair) {
			t.Fatalf("Decode(%q): expected ErrInvalidPair, got %v", in, err)
		}
	}
}

func TestCoordinateDecodeNumberGrammar(t *testing.T) {
	got, err := (Coordinate[float64]{}).Decode("1e3;+2.5")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != (Pair[float64, float64]{1000, 2.5}) {
		t.Fatalf("got %v", got)
	}

	for _, in := range []string{"1e3;0x1p-2", "0X10;1", "-0x1p3;1", "1;+0x1"} {
		if _, err := (Coordinate[float64]{}).Decode(in); !errors.Is(err, ErrInvalidPair) {
			t.Fatalf("Decode(%q): expected ErrInvalidPair, got %v", in, err)
		}
	}
}
