package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/csvfield"
)

type Options struct {
	// Sampling to avoid floods on bad input files; 0/1 = log all.
	DecodeFailedEvery uint64
	// Optional field text redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeFailedCtr atomic.Uint64
}

var _ csvfield.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(s string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(s)
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeFailed(name, input string, err error) {
	if h.l == nil || !sample(h.opts.DecodeFailedEvery, &h.decodeFailedCtr) {
		return
	}
	h.l.Debug("csvfield.decode_failed",
		"field", name,
		"input", h.redact(input),
		"err", err)
}

func (h *Hooks) DecodeTooLarge(name string, size, limit int) {
	if h.l == nil {
		return
	}
	h.l.Warn("csvfield.decode_too_large",
		"field", name,
		"size", size,
		"limit", limit)
}

func (h *Hooks) LossyOptional(name string) {
	if h.l == nil {
		return
	}
	h.l.Warn("csvfield.lossy_optional",
		"field", name,
		"msg", "optional over sequence/matrix; present empty values decode as absent")
}
