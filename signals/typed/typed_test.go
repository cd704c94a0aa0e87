package typed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/welf/reactive-signals/signals"
	"github.com/welf/reactive-signals/signals/typed"
)

func failOnError(t *testing.T) signals.OnErrorFunc {
	return func(from signals.SignalAware, err error) {
		assert.FailNow(t, err.Error())
	}
}

func TestComputed2OverMixedCells(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	a := signals.Signal(rs, 2)
	b := signals.Signal(rs, 3)

	doubled := typed.Computed1(rs, a, func(av int) int { return av * 2 })
	sum := typed.Computed2(rs, doubled, b, func(d, bv int) int { return d + bv })

	assert.Equal(t, 7, sum.Value())

	a.SetValue(5)
	assert.Equal(t, 13, sum.Value())

	b.SetValue(10)
	assert.Equal(t, 20, sum.Value())
}

func TestEffect1RerunsAndStops(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	s := signals.Signal(rs, 1)

	var seen []int
	stop := typed.Effect1(rs, s, func(v int) error {
		seen = append(seen, v)
		return nil
	})
	s.SetValue(2)
	assert.Equal(t, []int{1, 2}, seen)

	stop()
	s.SetValue(3)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestEffect3TracksAllDeps(t *testing.T) {
	rs := signals.CreateReactiveSystem(failOnError(t))
	a := signals.Signal(rs, 1)
	b := signals.Signal(rs, 2)
	c := signals.Signal(rs, 3)

	runs := 0
	typed.Effect3(rs, a, b, c, func(av, bv, cv int) error {
		runs++
		return nil
	})
	assert.Equal(t, 1, runs)

	a.SetValue(10)
	b.SetValue(20)
	c.SetValue(30)
	assert.Equal(t, 4, runs)
}
