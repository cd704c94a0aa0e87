package signals

import mapset "github.com/deckarep/golang-set/v2"

// cell is the subscriber-set half of a reactive cell, shared by writeable
// and computed signals. The slice is authoritative for fan-out order, which
// is the order of most recent subscription; the set only answers membership
// so a runner appears at most once.
type cell struct {
	rs      *ReactiveSystem
	subs    []*runner
	members mapset.Set[*runner]
}

func newCell(rs *ReactiveSystem) cell {
	return cell{
		rs:      rs,
		members: mapset.NewSet[*runner](),
	}
}

// track registers the currently executing runner, if any, as a subscriber
// of this cell and records the reverse edge on the runner. Reads outside a
// running effect or computation have no side effect.
func (c *cell) track() {
	r := c.rs.activeRunner
	if r == nil {
		return
	}
	c.subscribe(r)
	r.addDep(c)
}

func (c *cell) subscribe(r *runner) {
	if c.members.Contains(r) {
		return
	}
	c.members.Add(r)
	c.subs = append(c.subs, r)
}

// unsubscribe is idempotent.
func (c *cell) unsubscribe(r *runner) {
	if !c.members.Contains(r) {
		return
	}
	c.members.Remove(r)
	for i, sub := range c.subs {
		if sub == r {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// notify invokes every currently subscribed runner, synchronously and in
// subscription order. The list is snapshotted up front so that runners
// subscribing or unsubscribing mid fan-out are handled by the recursive
// notification rather than by this loop.
func (c *cell) notify() {
	snapshot := make([]*runner, len(c.subs))
	copy(snapshot, c.subs)
	for _, r := range snapshot {
		r.invoke()
	}
}
