package field

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sequence is a Codec for lists of signed integers.
// The zero value is ready to use.
//
//	[]int32{-1, 1} <-> "-1_1"
//	[]int32{}      <-> ""
type Sequence[T constraints.Signed] struct{}

var _ Codec[[]int] = Sequence[int]{}

func (Sequence[T]) Encode(seq []T) string {
	if len(seq) == 0 {
		return ""
	}
	b := make([]byte, 0, len(seq)*4)
	for i, n := range seq {
		if i > 0 {
			b = append(b, SequenceSep...)
		}
		b = strconv.AppendInt(b, int64(n), 10)
	}
	return string(b)
}

// Decode never returns a nil slice on success: "" is the empty sequence.
func (Sequence[T]) Decode(s string) ([]T, error) {
	if s == "" {
		return []T{}, nil
	}
	bits := bitSize[T]()
	parts := strings.Split(s, SequenceSep)
	out := make([]T, 0, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, bits)
		if err != nil {
			return nil, &DecodeError{Kind: ErrInvalidNumber, Input: p, Index: i, Err: err}
		}
		out = append(out, T(n))
	}
	return out, nil
}

// EmptyIsValue reports that "" decodes to a value (the empty sequence)
// rather than to nothing. See Optional.Lossy.
func (Sequence[T]) EmptyIsValue() bool { return true }
