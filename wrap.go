package csvfield

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/csvfield/field"
)

type wrapped[V any] struct {
	name      string
	inner     field.Codec[V]
	log       Logger
	hooks     Hooks
	maxDecode int
}

var _ field.Codec[[]int] = (*wrapped[[]int])(nil)

func newWrapped[V any](inner field.Codec[V], opts Options) (*wrapped[V], error) {
	if inner == nil {
		return nil, fmt.Errorf("csvfield: codec is required")
	}
	if opts.MaxDecode < 0 {
		return nil, fmt.Errorf("csvfield: negative MaxDecode %d", opts.MaxDecode)
	}

	w := &wrapped[V]{
		inner:     inner,
		maxDecode: opts.MaxDecode,
	}

	// defaults
	w.name = coalesce(opts.Name, defaultName)
	w.log = coalesce[Logger](opts.Logger, NopLogger{})
	w.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	if l, ok := inner.(interface{ Lossy() bool }); ok && l.Lossy() {
		w.log.Warn("optional over empty-valued codec: present empty values decode as absent", Fields{"field": w.name})
		w.hooks.LossyOptional(w.name)
	}
	if w.maxDecode > 0 {
		w.inner = field.Limit[V]{Inner: inner, MaxDecode: w.maxDecode}
	}
	return w, nil
}

func (w *wrapped[V]) Encode(v V) string { return w.inner.Encode(v) }

func (w *wrapped[V]) Decode(s string) (V, error) {
	v, err := w.inner.Decode(s)
	if err == nil {
		return v, nil
	}
	// the limit may come from a field.Limit the caller built, not Options
	var se *field.SizeError
	if errors.As(err, &se) {
		w.hooks.DecodeTooLarge(w.name, se.Size, se.Limit)
		w.log.Debug("field too large", Fields{"field": w.name, "size": se.Size, "limit": se.Limit})
	} else {
		w.hooks.DecodeFailed(w.name, s, err)
		w.log.Debug("field decode failed", Fields{"field": w.name, "err": err})
	}
	return v, &FieldError{Name: w.name, Err: err}
}
