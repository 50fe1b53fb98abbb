// Package presence provides a cancelable wait for a condition over an
// externally mutated structure, such as a render tree whose elements mount
// asynchronously. A Waiter checks a predicate immediately and again on every
// change notification until the predicate holds, then runs a callback exactly
// once and stops listening.
package presence

import "sync"

// Waiter multiplexes wait requests over a single change-notification source.
// Notify is called by the owner of the observed structure after every
// mutation; there is no timeout, so a predicate that never becomes true keeps
// its request pending until it is canceled.
type Waiter struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]*request
}

type request struct {
	pred func() bool
	fn   func()
}

// NewWaiter creates an empty Waiter.
func NewWaiter() *Waiter {
	return &Waiter{pending: make(map[int]*request)}
}

// WaitUntil registers a predicate and a callback. The predicate is evaluated
// immediately; if it already holds, fn runs before WaitUntil returns and the
// returned cancel is a no-op. Otherwise the predicate is re-evaluated on each
// Notify until it holds, fn runs once, and the request is discarded. The
// returned cancel drops the request without running fn; it is safe to call
// after the callback has already run.
func (w *Waiter) WaitUntil(pred func() bool, fn func()) (cancel func()) {
	if pred == nil || fn == nil {
		return func() {}
	}
	if pred() {
		fn()
		return func() {}
	}

	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.pending[id] = &request{pred: pred, fn: fn}
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.pending, id)
		w.mu.Unlock()
	}
}

// Notify re-evaluates every pending predicate. Requests whose predicate now
// holds are removed before their callback runs, so a callback that mutates
// the observed structure cannot re-trigger itself.
func (w *Waiter) Notify() {
	w.mu.Lock()
	var ready []*request
	for id, req := range w.pending {
		if req.pred() {
			ready = append(ready, req)
			delete(w.pending, id)
		}
	}
	w.mu.Unlock()

	for _, req := range ready {
		req.fn()
	}
}

// CancelAll drops every pending request without running its callback.
func (w *Waiter) CancelAll() {
	w.mu.Lock()
	w.pending = make(map[int]*request)
	w.mu.Unlock()
}

// Pending reports the number of requests still waiting.
func (w *Waiter) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}
