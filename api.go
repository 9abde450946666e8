package csvfield

import (
	"github.com/unkn0wn-root/csvfield/field"
)

// Options tune a wrapped field codec.
// All fields are optional and have sensible defaults.
type Options struct {
	Name      string // field name used in logs, hooks and errors; "" => "field"
	Logger    Logger // if nil, NopLogger is used
	Hooks     Hooks  // if nil, NopHooks is used
	MaxDecode int    // max field text length in bytes; 0 => unlimited
}

// Wrap decorates a field codec with logging, hooks and an optional input
// size limit. Decode failures are returned as *FieldError wrapping the
// codec's *field.DecodeError.
//
// Wrapping an Optional over a sequence or matrix codec reports
// Hooks.LossyOptional once, at construction.
func Wrap[V any](inner field.Codec[V], opts Options) (field.Codec[V], error) {
	w, err := newWrapped[V](inner, opts)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// MustWrap is like Wrap but panics on error.
// Handy for package-level codec variables.
func MustWrap[V any](inner field.Codec[V], opts Options) field.Codec[V] {
	c, err := Wrap[V](inner, opts)
	if err != nil {
		panic(err)
	}
	return c
}
