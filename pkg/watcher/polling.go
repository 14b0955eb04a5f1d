package watcher

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultPollInterval is the fallback poll cadence.
const DefaultPollInterval = 2 * time.Second

// PollingWatcher is the fallback for environments where fsnotify is
// unavailable (some network filesystems, restricted sandboxes). It compares
// the file's mtime and size on a ticker.
type PollingWatcher struct {
	path     string
	interval time.Duration
	onChange func()
	done     chan struct{}

	lastMod  time.Time
	lastSize int64
}

// NewPollingWatcher creates a polling watcher for the file at path. A zero
// or negative interval falls back to DefaultPollInterval.
func NewPollingWatcher(path string, interval time.Duration, onChange func()) (*PollingWatcher, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w := &PollingWatcher{
		path:     abs,
		interval: interval,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	if info, err := os.Stat(abs); err == nil {
		w.lastMod = info.ModTime()
		w.lastSize = info.Size()
	}
	return w, nil
}

// Start begins polling on a background goroutine.
func (w *PollingWatcher) Start() {
	go w.loop()
}

func (w *PollingWatcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if w.check() {
				w.onChange()
			}
		case <-w.done:
			return
		}
	}
}

// check returns true when the file changed since the last observation. A
// missing file (mid-save rename) is not a change; the next successful stat
// picks it up.
func (w *PollingWatcher) check() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	changed := !info.ModTime().Equal(w.lastMod) || info.Size() != w.lastSize
	w.lastMod = info.ModTime()
	w.lastSize = info.Size()
	return changed
}

// Stop ends polling.
func (w *PollingWatcher) Stop() error {
	close(w.done)
	return nil
}

// Path returns the absolute path being polled.
func (w *PollingWatcher) Path() string {
	return w.path
}
