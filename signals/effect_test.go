package signals_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/welf/reactive-signals/signals"
)

func TestEffectRunsOnceOnCreation(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))

	runs := 0
	signals.Effect(rs, func() error {
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)
}

func TestEffectRerunsOnDependencyWrite(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	s := signals.Signal(rs, 1)

	var seen []int
	signals.Effect(rs, func() error {
		seen = append(seen, s.Value())
		return nil
	})

	s.SetValue(2)
	s.SetValue(3)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

/*
   a   b
    \ / (b read only while a is true)
     e
*/
func TestConditionalDependencyPruning(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	a := signals.Signal(rs, true)
	b := signals.Signal(rs, 1)

	runs := 0
	signals.Effect(rs, func() error {
		runs++
		if a.Value() {
			b.Value()
		}
		return nil
	})
	assert.Equal(t, 1, runs)

	b.SetValue(2)
	assert.Equal(t, 2, runs)

	// switching the branch away from b drops the subscription
	a.SetValue(false)
	assert.Equal(t, 3, runs)

	b.SetValue(3)
	assert.Equal(t, 3, runs)

	// and switching back rediscovers it
	a.SetValue(true)
	assert.Equal(t, 4, runs)
	b.SetValue(4)
	assert.Equal(t, 5, runs)
}

// an effect that writes its own dependency must not recurse
func TestSelfWriteTerminates(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	s := signals.Signal(rs, 0)

	runs := 0
	signals.Effect(rs, func() error {
		runs++
		s.SetValue(s.Value() + 1)
		return nil
	})
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, s.Value())

	s.SetValue(10)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 11, s.Value())
}

/*
   a <-> b, copied across by two effects
*/
func TestMutualUpdateTerminates(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	a := signals.Signal(rs, 1)
	b := signals.Signal(rs, 0)

	aRuns, bRuns := 0, 0
	signals.Effect(rs, func() error {
		aRuns++
		b.SetValue(a.Value())
		return nil
	})
	signals.Effect(rs, func() error {
		bRuns++
		a.SetValue(b.Value())
		return nil
	})
	assert.Equal(t, 1, aRuns)
	assert.Equal(t, 1, bRuns)

	// one external write, one run each: the copy-back is suppressed by
	// same-value semantics
	a.SetValue(5)
	assert.Equal(t, 2, aRuns)
	assert.Equal(t, 2, bRuns)
	assert.Equal(t, 5, a.Value())
	assert.Equal(t, 5, b.Value())
}

func TestDisposalSeversEdges(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	s := signals.Signal(rs, 1)

	runs := 0
	stop := signals.Effect(rs, func() error {
		s.Value()
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	stop()
	s.SetValue(2)
	assert.Equal(t, 1, runs)

	// double dispose is a no-op
	stop()
	s.SetValue(3)
	assert.Equal(t, 1, runs)
}

func TestEffectErrorReachesHandlerAndKeepsGraphUsable(t *testing.T) {
	var errs []error
	rs := signals.CreateReactiveSystem(func(from signals.SignalAware, err error) {
		errs = append(errs, err)
	})
	s := signals.Signal(rs, 0)

	runs := 0
	signals.Effect(rs, func() error {
		runs++
		if s.Value() > 0 {
			return errors.New("boom")
		}
		return nil
	})
	require.Equal(t, 1, runs)
	require.Empty(t, errs)

	s.SetValue(1)
	assert.Equal(t, 2, runs)
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "boom")

	// bookkeeping was restored, so the effect still reruns
	s.SetValue(2)
	assert.Equal(t, 3, runs)
	assert.Len(t, errs, 2)
}

// a nested write during fan-out reaches the then-current subscriber set
func TestReentrantWriteDuringFanOut(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	a := signals.Signal(rs, 0)
	b := signals.Signal(rs, 0)

	var bSeen []int
	signals.Effect(rs, func() error {
		b.SetValue(a.Value() * 10)
		return nil
	})
	signals.Effect(rs, func() error {
		bSeen = append(bSeen, b.Value())
		return nil
	})

	a.SetValue(1)
	a.SetValue(2)
	assert.Equal(t, []int{0, 10, 20}, bSeen)
}
