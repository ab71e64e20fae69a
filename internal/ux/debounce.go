// Package ux holds small interaction utilities shared by the engine and the
// TUI: debouncing for rapid event bursts like window resizes.
package ux

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of events into a single trailing-edge callback:
// the function runs once the calls have been quiet for the configured
// period. Rapid successive calls reset the timer.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	quiet time.Duration
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Call schedules fn to run after the quiet period, replacing any previously
// scheduled call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Cancel drops any pending call. Safe to call repeatedly or before any Call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
