// Package fnutil holds small function wrappers used by the site's scripts.
package fnutil

import (
	"sync"
	"time"
)

// Debouncer delays fn until wait has elapsed since the most recent Call.
// Only the value passed to the last Call is delivered.
type Debouncer[T any] struct {
	fn   func(T)
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
	value   T
}

// Debounce returns a Debouncer for fn. It is safe for concurrent use.
func Debounce[T any](fn func(T), wait time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, wait: wait}
}

// Call records v and restarts the wait.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.value = v
	d.pending = true

	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Stop drops a pending call, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reset()
}

// Flush runs a pending call immediately on the calling goroutine.
// It reports whether there was one.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.value
	d.reset()
	d.mu.Unlock()

	d.fn(v)
	return true
}

// fire runs only if no later Call, Stop or Flush superseded generation gen.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.pending || d.gen != gen {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.reset()
	d.mu.Unlock()

	d.fn(v)
}

// reset must be called with mu held.
func (d *Debouncer[T]) reset() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero T
	d.value = zero
	d.pending = false
	d.gen++
}
