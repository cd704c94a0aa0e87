package signals

import "log"

// OnErrorFunc receives errors raised by user callbacks. It is called after
// the runtime has restored its own bookkeeping, so the graph is internally
// consistent by the time the handler runs.
type OnErrorFunc func(from SignalAware, err error)

// SignalAware is anything that participates in a reactive system: writeable
// signals, computed signals and effect runners.
type SignalAware interface {
	isSignalAware()
}

// ReactiveSystem owns the single "currently executing runner" slot shared by
// every cell created against it. Execution is synchronous and
// single-threaded; at most one runner executes at a time, and nested runs
// save and restore the slot with strict stack discipline.
type ReactiveSystem struct {
	activeRunner *runner
	onError      OnErrorFunc
}

func CreateReactiveSystem(onError OnErrorFunc) *ReactiveSystem {
	return &ReactiveSystem{onError: onError}
}

func (rs *ReactiveSystem) reportError(from SignalAware, err error) {
	if rs.onError != nil {
		rs.onError(from, err)
		return
	}
	log.Printf("signals: callback failed, downstream state may be inconsistent: %v", err)
}
