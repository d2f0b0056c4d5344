package labelling

import (
	"fmt"
	"sync"

	"github.com/sentrymesh/evasion/cmap"
	"github.com/sentrymesh/evasion/labelupdate"
	"github.com/sentrymesh/evasion/statechange"
	"github.com/sentrymesh/evasion/topology"
)

// CycleLabelling is the mutable, partial map from boundary cycle to
// "might still hide an intruder". A cycle absent from the map is known to
// be unreachable from outside the patrolled region and is no longer
// tracked at all — the same forgetful discard the construction rule below
// applies.
type CycleLabelling struct {
	mu     sync.RWMutex
	labels map[string]bool
	cycles map[string]*cmap.Cycle
}

// mapLookup lets CycleLabelling.Update read the label map directly, inside
// the write lock it already holds, without going back through Get (which
// takes a read lock and would deadlock against it).
type mapLookup map[string]bool

func (m mapLookup) Get(c *cmap.Cycle) (bool, bool) {
	v, ok := m[c.Key()]
	return v, ok
}

// New seeds a CycleLabelling from a topology's initial state in three passes,
// matching the original construction rule exactly: every boundary cycle
// starts out true, every cycle a top-dimensional simplex fills is set false
// if that simplex is connected to the fence, and only then is every cycle
// still disconnected from the fence discarded entirely — including an
// unfilled hole that is itself walled off by surrounding filled faces, not
// just the filled ones. A sealed, unreachable room can't be reached by an
// intruder either, so it isn't worth tracking regardless of fill state.
func New(top *topology.Topology) (*CycleLabelling, error) {
	cl := &CycleLabelling{
		labels: make(map[string]bool),
		cycles: make(map[string]*cmap.Cycle),
	}
	for _, c := range top.BoundaryCycles() {
		cl.labels[c.Key()] = true
		cl.cycles[c.Key()] = c
	}

	dim := top.Dim()
	for _, s := range top.Simplices(dim) {
		connected, err := top.IsConnectedSimplex(s)
		if err != nil {
			return nil, err
		}
		if !connected {
			continue
		}
		cycle, err := statechange.ToCycle(s, top.BoundaryCycles())
		if err != nil {
			return nil, err
		}
		cl.labels[cycle.Key()] = false
	}

	for _, c := range top.BoundaryCycles() {
		connected, err := top.IsConnectedCycle(c)
		if err != nil {
			return nil, err
		}
		if !connected {
			delete(cl.labels, c.Key())
			delete(cl.cycles, c.Key())
		}
	}

	return cl, nil
}

// Get reads a cycle's current label. It satisfies labelupdate.Lookup.
func (cl *CycleLabelling) Get(cycle *cmap.Cycle) (bool, bool) {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	v, ok := cl.labels[cycle.Key()]

	return v, ok
}

// Contains reports whether a cycle is currently tracked at all.
func (cl *CycleLabelling) Contains(cycle *cmap.Cycle) bool {
	_, ok := cl.Get(cycle)

	return ok
}

// HasIntruder reports whether any tracked cycle could still hide an
// intruder.
func (cl *CycleLabelling) HasIntruder() bool {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	for _, v := range cl.labels {
		if v {
			return true
		}
	}

	return false
}

// Len returns the number of cycles currently tracked.
func (cl *CycleLabelling) Len() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()

	return len(cl.labels)
}

// Snapshot copies the current cycle-key -> label map, safe for a caller
// (e.g. a simulation Recorder) to retain across later updates.
func (cl *CycleLabelling) Snapshot() map[string]bool {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	out := make(map[string]bool, len(cl.labels))
	for k, v := range cl.labels {
		out[k] = v
	}

	return out
}

// Update applies a labelupdate.LabelUpdate atomically: it either commits
// every cycle addition, label change, and removal the update describes, or
// (on ErrNotAtomic or a Mapping error) changes nothing at all.
func (cl *CycleLabelling) Update(lu labelupdate.LabelUpdate) error {
	if !lu.IsAtomic() {
		return fmt.Errorf("%w: %s", ErrNotAtomic, lu.CaseName())
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	added := lu.CyclesAdded()
	for _, c := range added {
		cl.labels[c.Key()] = true
	}

	mapping, err := lu.Mapping(mapLookup(cl.labels))
	if err != nil {
		for _, c := range added {
			delete(cl.labels, c.Key())
		}

		return err
	}

	for _, c := range added {
		cl.cycles[c.Key()] = c
	}
	for key, label := range mapping {
		cl.labels[key] = label
	}
	for _, c := range lu.CyclesRemoved() {
		delete(cl.labels, c.Key())
		delete(cl.cycles, c.Key())
	}

	return nil
}
