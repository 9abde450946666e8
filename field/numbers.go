package field

import (
	"errors"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

var errHexFloat = errors.New("hexadecimal float")

// bitSize returns the width of T in bits, as strconv's Parse* functions expect.
func bitSize[T constraints.Integer | constraints.Float]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// parseUnsigned accepts one optional leading '+', like ParseInt does for
// signed elements.
func parseUnsigned(s string, bits int) (uint64, error) {
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}
	return strconv.ParseUint(s, 10, bits)
}

// parseFloat accepts decimal floats with an optional exponent. Go's
// hexadecimal float syntax ("0x1p-2") is rejected.
func parseFloat(s string, bits int) (float64, error) {
	d := s
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	if len(d) > 1 && d[0] == '0' && (d[1] == 'x' || d[1] == 'X') {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: errHexFloat}
	}
	return strconv.ParseFloat(s, bits)
}
