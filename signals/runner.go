package signals

import mapset "github.com/deckarep/golang-set/v2"

// runner is a re-invocable unit of work. While it executes, every cell it
// reads registers itself as a dependency, so the edge set is rebuilt from
// scratch on each run. That teardown-then-rediscover cycle is what makes
// conditional dependencies work: a branch not taken this run is not
// resubscribed.
type runner struct {
	rs   *ReactiveSystem
	fn   func() error
	from SignalAware

	// active goes false on disposal, running is true for the duration of a
	// run and is the sole recursion guard.
	active  bool
	running bool

	// deps is the authoritative ordered record used to unsubscribe before a
	// rerun; depSet dedupes repeated reads of the same cell within one run.
	deps   []*cell
	depSet mapset.Set[*cell]
}

func (r *runner) isSignalAware() {}

func newRunner(rs *ReactiveSystem, fn func() error) *runner {
	return &runner{
		rs:     rs,
		fn:     fn,
		active: true,
		depSet: mapset.NewSet[*cell](),
	}
}

func (r *runner) addDep(c *cell) {
	if r.depSet.Contains(c) {
		return
	}
	r.depSet.Add(c)
	r.deps = append(r.deps, c)
}

// detach severs every dependency edge and clears the sequence.
func (r *runner) detach() {
	for _, c := range r.deps {
		c.unsubscribe(r)
	}
	r.deps = r.deps[:0]
	r.depSet.Clear()
}

// invoke runs the callback once, rebuilding the dependency set as it reads.
// Re-entrant invocations and invocations after disposal are no-ops. The
// active-runner slot and the running flag are restored on the way out even
// if the callback panics, so the caller always sees consistent bookkeeping.
func (r *runner) invoke() {
	if r.running || !r.active {
		return
	}
	r.detach()

	r.running = true
	prev := r.rs.activeRunner
	r.rs.activeRunner = r
	defer func() {
		r.rs.activeRunner = prev
		r.running = false
	}()

	if err := r.fn(); err != nil {
		r.rs.reportError(r.from, err)
	}
}

// dispose makes all future invocations no-ops and severs every dependency
// edge. Safe to call more than once.
func (r *runner) dispose() {
	if !r.active {
		return
	}
	r.active = false
	r.detach()
}
