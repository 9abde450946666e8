package field

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestLimitRejectsOversizedInput(t *testing.T) {
	c := Limit[[]int]{Inner: Sequence[int]{}, MaxDecode: 8}

	if _, err := c.Decode("1_2_3_4"); err != nil {
		t.Fatalf("within limit: %v", err)
	}
	_, err := c.Decode("1_2_3_4_5")
	if !errors.Is(err, ErrTooLong) {
		t.Fatalf("expected ErrTooLong, got %v", err)
	}
	if errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("inner codec must not run on oversized input")
	}
	var se *SizeError
	if !errors.As(err, &se) || se.Size != 9 || se.Limit != 8 {
		t.Fatalf("expected SizeError{9, 8}, got %v", err)
	}
	if err.Error() != "field: input too long: 9 > 8 bytes" {
		t.Fatalf("unexpected message: %s", err)
	}
	if got := c.Encode([]int{1, 2}); got != "1_2" {
		t.Fatalf("Encode = %q", got)
	}
}

func TestLimitDisabled(t *testing.T) {
	c := Limit[[]int]{Inner: Sequence[int]{}}
	in := strings.Repeat("1_", 1000) + "1"
	got, err := c.Decode(in)
	if err != nil || len(got) != 1001 {
		t.Fatalf("Decode: len=%d err=%v", len(got), err)
	}
}

func TestLimitForwardsLossiness(t *testing.T) {
	seq := Limit[Option[[]int]]{Inner: Optional[[]int]{Inner: Sequence[int]{}}, MaxDecode: 10}
	if !seq.Lossy() {
		t.Fatalf("expected Lossy through Limit")
	}
	if !(Limit[[]int]{Inner: Sequence[int]{}}).EmptyIsValue() {
		t.Fatalf("expected EmptyIsValue through Limit")
	}
	if (Limit[Pair[uint8, uint8]]{Inner: Dimension[uint8, uint8]{}}).Lossy() {
		t.Fatalf("dimension must not be lossy")
	}
}

func TestCodecsConcurrentUse(t *testing.T) {
	var (
		seq Sequence[int32]
		mat Matrix[int32]
		dim Dimension[uint8, uint16]
		geo Coordinate[float32]
	)
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int32) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := seq.Decode(seq.Encode([]int32{n, -n})); err != nil {
					errs <- err
				}
				if _, err := mat.Decode(mat.Encode([][]int32{{n}, {-n}})); err != nil {
					errs <- err
				}
				if _, err := dim.Decode(dim.Encode(Pair[uint8, uint16]{uint8(n), 1024})); err != nil {
					errs <- err
				}
				if _, err := geo.Decode(geo.Encode(Pair[float32, float32]{float32(n) / 3, -135})); err != nil {
					errs <- err
				}
			}
		}(int32(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
