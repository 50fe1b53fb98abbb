// Package pausetimer provides a single-shot delayed callback that can be
// paused and resumed while keeping track of the remaining delay.
package pausetimer

import (
	"sync"
	"time"
)

// Timer schedules a callback once after a delay. Unlike time.Timer it can be
// paused, in which case the unspent portion of the delay is retained and used
// when the timer is resumed.
type Timer struct {
	mu        sync.Mutex
	callback  func()
	timer     *time.Timer
	remaining time.Duration
	armedAt   time.Time
	running   bool
	cleared   bool
}

// New creates a Timer and immediately arms it: the callback fires after delay
// unless the timer is paused or cleared first. A nil callback arms a timer
// that fires into nothing.
func New(callback func(), delay time.Duration) *Timer {
	if delay < 0 {
		delay = 0
	}
	t := &Timer{
		callback:  callback,
		remaining: delay,
	}
	t.arm(delay)
	return t
}

func (t *Timer) arm(delay time.Duration) {
	t.armedAt = time.Now()
	t.running = true
	t.timer = time.AfterFunc(delay, t.fire)
}

func (t *Timer) fire() {
	t.mu.Lock()
	if t.cleared || !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	t.remaining = 0
	callback := t.callback
	t.mu.Unlock()

	if callback != nil {
		callback()
	}
}

// Pause cancels the pending fire and subtracts the elapsed time from the
// remaining delay. Pausing an already paused or cleared timer is a no-op and
// does not corrupt the remaining delay.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cleared || !t.running {
		return
	}
	t.timer.Stop()
	t.running = false
	t.remaining -= time.Since(t.armedAt)
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Resume re-arms the timer with the remaining delay, never the original one.
// Resuming a running or cleared timer is a no-op.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cleared || t.running {
		return
	}
	t.arm(t.remaining)
}

// Clear cancels any pending fire and renders the timer inert: no further
// callback invocation is possible and the timer cannot be re-armed. Safe to
// call repeatedly.
func (t *Timer) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cleared {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.cleared = true
	t.running = false
}

// Remaining reports the remaining delay. The value is exact at construction
// and after Pause; while the timer is running it reflects the delay recorded
// at the last arm, not a continuously updated countdown.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Running reports whether the timer currently has a pending fire.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running && !t.cleared
}
