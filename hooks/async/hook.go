// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/csvfield"
//	"github.com/unkn0wn-root/csvfield/field"
//	asynchook "github.com/unkn0wn-root/csvfield/hooks/async"
//	"github.com/unkn0wn-root/csvfield/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DecodeFailedEvery: 100, // sample logs: ~every 100th bad field
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	sizes := csvfield.MustWrap[field.Pair[uint8, uint16]](field.Dimension[uint8, uint16]{}, csvfield.Options{
//	    Name:  "image_size",
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/csvfield"
)

type Hooks struct {
	inner  csvfield.Hooks
	q      chan func()
	wg     sync.WaitGroup
	once   sync.Once
	mu     sync.RWMutex
	closed bool
}

var _ csvfield.Hooks = (*Hooks)(nil)

func New(inner csvfield.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to run.
// Events fired after Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) DecodeFailed(name, input string, err error) {
	h.try(func() { h.inner.DecodeFailed(name, input, err) })
}
func (h *Hooks) DecodeTooLarge(name string, size, limit int) {
	h.try(func() { h.inner.DecodeTooLarge(name, size, limit) })
}
func (h *Hooks) LossyOptional(name string) { h.try(func() { h.inner.LossyOptional(name) }) }
