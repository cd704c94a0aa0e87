package signals

// Effect runs fn once immediately, before returning, and reruns it whenever
// a cell it read on its last run changes. Errors returned by fn are passed
// to the system's error handler after the runtime state is restored.
//
// The returned stop function severs every dependency edge and turns all
// future invocations into no-ops; calling it more than once is safe.
func Effect(rs *ReactiveSystem, fn func() error) (stop func()) {
	r := newRunner(rs, fn)
	r.from = r
	r.invoke()
	return r.dispose
}
