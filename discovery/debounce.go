package discovery

import (
	"sync"
	"time"
)

// Debouncer holds back a rapidly-changing value until it has been quiet for
// the configured delay, then delivers it exactly once. Every Set restarts the
// quiet-period timer, so only the last value of a burst is ever emitted.
// Each facet that needs debouncing owns its own instance.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fire    func(T)
	timer   *time.Timer
	gen     uint64
	pending T
}

func NewDebouncer[T any](delay time.Duration, fire func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fire: fire}
}

// Set replaces the pending value and restarts the quiet-period timer.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	d.pending = v
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.emit(gen) })
	d.mu.Unlock()
}

// emit delivers the pending value unless a newer Set has superseded it. The
// generation check covers the window where timer.Stop raced with the timer
// already firing.
func (d *Debouncer[T]) emit(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.timer = nil
	d.mu.Unlock()
	d.fire(v)
}

// Flush delivers the pending value immediately, cancelling the timer.
// No-op when nothing is pending.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	v := d.pending
	d.mu.Unlock()
	d.fire(v)
}

// Stop cancels any pending delivery without emitting it.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.mu.Unlock()
}
