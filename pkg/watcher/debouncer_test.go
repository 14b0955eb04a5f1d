package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(30 * time.Millisecond)

	for i := 0; i < 5; i++ {
		d.Trigger(func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("Expected burst to coalesce into 1 call, got %d", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(30 * time.Millisecond)

	d.Trigger(func() { fired.Add(1) })
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("Expected cancelled callback to never run, got %d calls", got)
	}
}

func TestDebouncerSeparateBursts(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { fired.Add(1) })
	time.Sleep(80 * time.Millisecond)
	d.Trigger(func() { fired.Add(1) })
	time.Sleep(80 * time.Millisecond)

	if got := fired.Load(); got != 2 {
		t.Errorf("Expected 2 separate firings, got %d", got)
	}
}

func TestDebouncerDefaultWindow(t *testing.T) {
	d := NewDebouncer(0)
	if d.Window() != DefaultDebounce {
		t.Errorf("Expected default window %v, got %v", DefaultDebounce, d.Window())
	}
}
