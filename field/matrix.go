package field

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Matrix is a Codec for lists of signed integer lists. Rows are encoded
// with Sequence and joined with MatrixSep.
// The zero value is ready to use.
//
//	[][]int32{{-1, 1}, {1, -1}} <-> "-1_1|1_-1"
//	[][]int32{}                 <-> ""
//
// A matrix holding a single empty row also encodes to "" and therefore
// decodes back to zero rows.
type Matrix[T constraints.Signed] struct{}

var _ Codec[[][]int] = Matrix[int]{}

func (Matrix[T]) Encode(rows [][]T) string {
	if len(rows) == 0 {
		return ""
	}
	var seq Sequence[T]
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString(MatrixSep)
		}
		b.WriteString(seq.Encode(row))
	}
	return b.String()
}

// Decode returns zero rows for "", never one empty row.
func (Matrix[T]) Decode(s string) ([][]T, error) {
	if s == "" {
		return [][]T{}, nil
	}
	var seq Sequence[T]
	lines := strings.Split(s, MatrixSep)
	rows := make([][]T, 0, len(lines))
	for i, line := range lines {
		row, err := seq.Decode(line)
		if err != nil {
			return nil, &DecodeError{Kind: ErrInvalidRow, Input: line, Index: i, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (Matrix[T]) EmptyIsValue() bool { return true }
