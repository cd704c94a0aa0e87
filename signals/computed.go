package signals

// ReadonlySignal is a derived cell. It caches the result of its compute
// function and recomputes lazily, on the first read after one of its
// inputs changed. Construction alone never runs the compute function.
type ReadonlySignal[T comparable] struct {
	cell
	compute func() (T, error)
	value   T
	dirty   bool

	// run is the internal runner currently subscribed to the inputs; nil
	// while dirty. It is discarded and rebuilt, not reused, on every
	// clean-to-dirty transition, which is how the cell forgets stale input
	// subscriptions and rediscovers them on the next recompute.
	run *runner
}

func (s *ReadonlySignal[T]) isSignalAware() {}

func Computed[T comparable](rs *ReactiveSystem, compute func() (T, error)) *ReadonlySignal[T] {
	return &ReadonlySignal[T]{
		cell:    newCell(rs),
		compute: compute,
		dirty:   true,
	}
}

// Value recomputes if the cached value is stale, then registers the
// executing runner, if any, as a subscriber and returns the cached value.
// A failed recompute reports through the system error hook, leaves the
// cell dirty and returns the zero value.
func (s *ReadonlySignal[T]) Value() T {
	if s.dirty {
		r := newRunner(s.rs, s.tick)
		r.from = s
		s.run = r
		r.invoke()
		if s.dirty {
			// The compute function failed. Drop whatever edges the aborted
			// run acquired so nothing points at a dead runner.
			r.dispose()
			s.run = nil
			var zero T
			return zero
		}
	}
	s.track()
	return s.value
}

// tick is the internal runner's callback. A dirty invocation (always the
// first, at runner construction) evaluates and caches. A clean one means an
// input changed after the last recompute: flip back to dirty, discard the
// runner to sever the input subscriptions, and forward the notification to
// this cell's own subscribers so downstream effects rerun even though no
// recompute happens until the next read.
func (s *ReadonlySignal[T]) tick() error {
	if s.dirty {
		v, err := s.compute()
		if err != nil {
			return err
		}
		s.value = v
		s.dirty = false
		return nil
	}

	s.dirty = true
	if s.run != nil {
		s.run.dispose()
		s.run = nil
	}
	s.notify()
	return nil
}
