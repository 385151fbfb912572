// Package fault converts failures from anywhere in the process (returned
// errors, recovered panics, captured stderr noise, manual reports) into
// typed events and fans them out to registered observers.
//
// A single Handler is constructed in main and passed to everything that
// reports or displays faults. Observers run synchronously on the goroutine
// that raised the fault, in registration order; they must not block and must
// not panic. Anything that renders defers the actual drawing to its own
// render pass and only mutates state from the callback.
package fault

import (
	"sync"
	"sync/atomic"
	"time"
)

// Event is an immutable snapshot of one classified failure occurrence.
type Event struct {
	Message  string
	Severity Severity
	Category string
	Origin   Origin
	Time     time.Time
}

// Observer receives every published event. It runs on the publishing
// goroutine and must return promptly.
type Observer func(Event)

// Handler classifies failures and distributes the resulting events.
type Handler struct {
	mu              sync.Mutex
	observers       []Observer
	panicOnCritical atomic.Bool
}

// NewHandler returns a Handler with no observers registered.
func NewHandler() *Handler {
	return &Handler{}
}

// AddObserver registers fn. Observers are invoked in registration order.
func (h *Handler) AddObserver(fn Observer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, fn)
}

// ClearObservers removes every registered observer.
func (h *Handler) ClearObservers() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = nil
}

// SetPanicOnCritical controls the escalation policy: when enabled, a Wrap
// adapter re-panics the recovered value after publishing a Critical
// classification instead of absorbing it. Off by default. Report and Check
// never re-raise regardless of this flag.
func (h *Handler) SetPanicOnCritical(enabled bool) {
	h.panicOnCritical.Store(enabled)
}

// Report publishes a fault directly with category "manual_report".
// It is pure side effect and never alters control flow.
func (h *Handler) Report(msg string, sev Severity) {
	h.publish(msg, sev, CategoryManual, callerOrigin(0))
}

// Check observes a fallible result: nil is a no-op, a non-nil error is
// published as a Warn fault. The error is not consumed; the caller still
// owns and handles it.
func (h *Handler) Check(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	if msg == "" {
		msg = "Operation failed"
	}
	h.publish(msg, SeverityWarn, CategoryManual, callerOrigin(0))
}

// publish constructs the event and delivers it to every observer in
// registration order. The lock covers the whole fan-out so list mutation and
// iteration are mutually exclusive; observers therefore must not call back
// into AddObserver or ClearObservers.
func (h *Handler) publish(msg string, sev Severity, category string, origin Origin) {
	e := Event{
		Message:  msg,
		Severity: sev,
		Category: category,
		Origin:   origin,
		Time:     time.Now(),
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, fn := range h.observers {
		fn(e)
	}
}
