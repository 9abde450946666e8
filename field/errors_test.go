package field

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeErrorMessage(t *testing.T) {
	_, err := (Sequence[int]{}).Decode("1_a")
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "field: invalid number at 1 \"a\"") {
		t.Fatalf("unexpected message: %s", msg)
	}

	_, err = (Dimension[uint8, uint8]{}).Decode("")
	if err == nil || err.Error() != "field: invalid pair" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDecodeErrorUnwrap(t *testing.T) {
	inner := &DecodeError{Kind: ErrInvalidNumber, Input: "x", Index: 0}
	outer := &DecodeError{Kind: ErrInvalidRow, Input: "x", Index: 2, Err: inner}
	if !errors.Is(outer, ErrInvalidRow) || !errors.Is(outer, ErrInvalidNumber) {
		t.Fatalf("errors.Is must match both kinds")
	}
	if errors.Is(outer, ErrInvalidPair) {
		t.Fatalf("unexpected match")
	}
	if got := len(inner.Unwrap()); got != 1 {
		t.Fatalf("Unwrap len = %d, want 1", got)
	}
}
