package field

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber = errors.New("field: invalid number")
	ErrInvalidRow    = errors.New("field: invalid row")
	ErrInvalidPair   = errors.New("field: invalid pair")
	ErrTooLong       = errors.New("field: input too long")
)

// DecodeError describes why a field's text could not be decoded.
// Kind is one of the Err* sentinels above; errors.Is matches both Kind and
// anything reachable through Err, so a matrix row failure still satisfies
// errors.Is(err, ErrInvalidNumber).
type DecodeError struct {
	Kind  error
	Input string // offending text: the element for numbers, the row for rows, the field for pairs
	Index int    // element or row position, -1 when it does not apply
	Err   error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprint(e.Kind)
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at %d", e.Index)
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" %q", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// SizeError is the cause of an ErrTooLong DecodeError.
type SizeError struct {
	Size  int // length of the rejected text in bytes
	Limit int // MaxDecode of the Limit that rejected it
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%d > %d bytes", e.Size, e.Limit)
}

func pairError(input string, err error) *DecodeError {
	return &DecodeError{Kind: ErrInvalidPair, Input: input, Index: -1, Err: err}
}
