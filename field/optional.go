package field

// Option is either absent (Valid == false) or holds Value.
type Option[T any] struct {
	Value T
	Valid bool
}

func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }

// Optional wraps a Codec so that an absent value is the empty field.
// Encode of an absent value is "". Decode of "" is None. Anything else is
// decoded by Inner and its error is returned unchanged.
//
// Stacking Optional on Sequence or Matrix is lossy: both already encode an
// empty collection as "", so Some(empty) decodes as None. Lossy reports it.
type Optional[V any] struct {
	// Inner is the codec for present values. It must be set.
	Inner Codec[V]
}

func (c Optional[V]) Encode(o Option[V]) string {
	if !o.Valid {
		return ""
	}
	return c.Inner.Encode(o.Value)
}

func (c Optional[V]) Decode(s string) (Option[V], error) {
	if s == "" {
		return None[V](), nil
	}
	v, err := c.Inner.Decode(s)
	if err != nil {
		return None[V](), err
	}
	return Some(v), nil
}

// Lossy reports whether Inner maps "" to a value of its own, in which case
// present-but-empty values do not survive a round trip.
func (c Optional[V]) Lossy() bool {
	return emptyIsValue(c.Inner)
}

func emptyIsValue(c any) bool {
	e, ok := c.(interface{ EmptyIsValue() bool })
	return ok && e.EmptyIsValue()
}
