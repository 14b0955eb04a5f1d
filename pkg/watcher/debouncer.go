package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the debounce window used when none is configured.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces bursts of Trigger calls into one callback invocation
// after the window elapses. Safe for concurrent use.
type Debouncer struct {
	window time.Duration
	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
}

// NewDebouncer creates a Debouncer with the given window; zero or negative
// falls back to DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn after the window. A Trigger arriving before the
// window elapses replaces the pending callback and restarts the window.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A stale timer may fire concurrently with a newer Trigger or a
		// Cancel; the sequence number decides which callback is current.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Cancel drops any pending callback, including one whose timer has already
// fired but not yet run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
