package fault

// Wrap returns an adapter with the same result type as fn that absorbs any
// failure: a returned non-nil error or a panic is classified and published,
// and the adapter returns the zero value instead. The original failure never
// escapes the adapter, so callers must treat a zero result as the failure
// signal. The reported origin is the call site of Wrap itself.
//
// Operations taking arguments close over them:
//
//	load := fault.Wrap(h, func() (*run.Metrics, error) {
//		return run.ReadMetrics(path)
//	})
//	m := load() // nil on failure, already reported
func Wrap[T any](h *Handler, fn func() (T, error)) func() T {
	origin := callerOrigin(0)
	return func() (out T) {
		defer h.recoverPanic(origin)
		v, err := fn()
		if err != nil {
			sev, category := classifyError(err)
			h.publish(err.Error(), sev, category, origin)
			return out
		}
		return v
	}
}

// WrapFunc is Wrap for side-effect-only operations.
func WrapFunc(h *Handler, fn func() error) func() {
	origin := callerOrigin(0)
	return func() {
		defer h.recoverPanic(origin)
		if err := fn(); err != nil {
			sev, category := classifyError(err)
			h.publish(err.Error(), sev, category, origin)
		}
	}
}

// recoverPanic absorbs a panic raised inside a wrapped operation, publishing
// it as a fault. When the escalation policy is enabled, a Critical
// classification re-panics the original value after publishing.
func (h *Handler) recoverPanic(origin Origin) {
	v := recover()
	if v == nil {
		return
	}
	msg, sev, category := classifyPanic(v)
	h.publish(msg, sev, category, origin)
	if sev == SeverityCritical && h.panicOnCritical.Load() {
		panic(v)
	}
}
