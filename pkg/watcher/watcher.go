// Package watcher provides live-reload support for the data file: fsnotify
// events on the file's directory, debounced into a single reload callback.
package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DataWatcher watches the family data file and fires a debounced callback
// when it changes. Editors often replace files via rename, so the watch is
// on the containing directory with events filtered by file name.
type DataWatcher struct {
	path     string
	debounce *Debouncer
	fw       *fsnotify.Watcher
	onChange func()
	done     chan struct{}
}

// NewDataWatcher creates a watcher for the file at path. onChange runs on
// the watcher goroutine after the debounce window elapses.
func NewDataWatcher(path string, debounce time.Duration, onChange func()) (*DataWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &DataWatcher{
		path:     abs,
		debounce: NewDebouncer(debounce),
		fw:       fw,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Start begins dispatching events. It returns immediately; events are
// handled on a background goroutine until Stop is called.
func (w *DataWatcher) Start() {
	go w.loop()
}

func (w *DataWatcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce.Trigger(w.onChange)
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the viewer keeps the last
			// good snapshot.
		case <-w.done:
			return
		}
	}
}

// Stop cancels any pending reload and releases the underlying watcher.
func (w *DataWatcher) Stop() error {
	close(w.done)
	w.debounce.Cancel()
	return w.fw.Close()
}

// Path returns the absolute path being watched.
func (w *DataWatcher) Path() string {
	return w.path
}
