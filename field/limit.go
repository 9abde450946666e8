package field

// Limit wraps another codec to enforce a maximum field length at Decode
// time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length in bytes of the field text.
	// Longer input fails with ErrTooLong without invoking Inner.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) string { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(s string) (V, error) {
	if c.MaxDecode > 0 && len(s) > c.MaxDecode {
		var zero V
		return zero, &DecodeError{
			Kind:  ErrTooLong,
			Index: -1,
			Err:   &SizeError{Size: len(s), Limit: c.MaxDecode},
		}
	}
	return c.Inner.Decode(s)
}

func (c Limit[V]) EmptyIsValue() bool { return emptyIsValue(c.Inner) }

// Lossy forwards Optional.Lossy when Inner is an Optional.
func (c Limit[V]) Lossy() bool {
	l, ok := c.Inner.(interface{ Lossy() bool })
	return ok && l.Lossy()
}
