package csvfield

import (
	"fmt"

	"github.com/unkn0wn-root/csvfield/field"
)

// Decode error kinds, re-exported from package field.
var (
	ErrInvalidNumber = field.ErrInvalidNumber
	ErrInvalidRow    = field.ErrInvalidRow
	ErrInvalidPair   = field.ErrInvalidPair
	ErrTooLong       = field.ErrTooLong
)

// FieldError names the field whose text failed to decode.
type FieldError struct {
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("csvfield: decode %q: %v", e.Name, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
