package signals

import "math"

// WriteableSignal is a mutable reactive cell.
type WriteableSignal[T comparable] struct {
	cell
	value T
}

func (s *WriteableSignal[T]) isSignalAware() {}

func Signal[T comparable](rs *ReactiveSystem, initialValue T) *WriteableSignal[T] {
	return &WriteableSignal[T]{
		cell:  newCell(rs),
		value: initialValue,
	}
}

// Value returns the current value. If a runner is executing it becomes a
// subscriber of this signal.
func (s *WriteableSignal[T]) Value() T {
	s.track()
	return s.value
}

// SetValue stores a new value and synchronously notifies every subscriber,
// in subscription order, before returning. Writes that leave the value
// indistinguishable under same-value semantics trigger no notifications.
func (s *WriteableSignal[T]) SetValue(v T) {
	if sameValue(s.value, v) {
		return
	}
	s.value = v
	s.notify()
}

// sameValue is identity comparison: NaN equals itself and +0 and -0 are
// distinct. Go's == gives neither for floats, so those go through the bit
// pattern with a both-NaN short circuit.
func sameValue[T comparable](a, b T) bool {
	switch av := any(a).(type) {
	case float64:
		bv := any(b).(float64)
		if math.IsNaN(av) && math.IsNaN(bv) {
			return true
		}
		return math.Float64bits(av) == math.Float64bits(bv)
	case float32:
		bv := any(b).(float32)
		if av != av && bv != bv {
			return true
		}
		return math.Float32bits(av) == math.Float32bits(bv)
	}
	return a == b
}
