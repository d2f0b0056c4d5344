package statechange

import (
	"github.com/sentrymesh/evasion/cmap"
	"github.com/sentrymesh/evasion/simplex"
	"github.com/sentrymesh/evasion/topology"
)

// StateChange is a two-topology diff: it stores references to both
// snapshots and computes every delta on demand rather than eagerly.
type StateChange struct {
	New *topology.Topology
	Old *topology.Topology
}

// New builds a StateChange between two consecutive topology snapshots.
func New(newTopology, oldTopology *topology.Topology) *StateChange {
	return &StateChange{New: newTopology, Old: oldTopology}
}

// SimplexDiff is SetDifference(New.Simplices(dim), Old.Simplices(dim)).
func (sc *StateChange) SimplexDiff(dim int) SetDifference[simplex.Simplex] {
	return NewSetDifference(sc.New.Simplices(dim), sc.Old.Simplices(dim))
}

// BoundaryCycleDiff is SetDifference(New.BoundaryCycles(), Old.BoundaryCycles()).
func (sc *StateChange) BoundaryCycleDiff() SetDifference[*cmap.Cycle] {
	return NewSetDifference(sc.New.BoundaryCycles(), sc.Old.BoundaryCycles())
}

// Case is the closed-catalogue case tuple: for d = 1..dim, the count of
// added and removed d-simplices, followed by the count of added and
// removed boundary cycles. A 2D topology yields a 6-tuple; 3D an 8-tuple.
func (sc *StateChange) Case() []int {
	dim := sc.New.Dim()
	out := make([]int, 0, 2*dim+2)
	for d := 1; d <= dim; d++ {
		diff := sc.SimplexDiff(d)
		out = append(out, len(diff.Added()), len(diff.Removed()))
	}
	bc := sc.BoundaryCycleDiff()
	out = append(out, len(bc.Added()), len(bc.Removed()))

	return out
}

// IsValid reports whether every added top-dimensional simplex corresponds
// to exactly one cycle in the new boundary-cycle set, and every removed one
// to exactly one cycle in the old set. It surfaces ErrCycleNotAssociated or
// ErrCycleAmbiguous rather than silently treating the correspondence as
// well-formed.
func (sc *StateChange) IsValid() (bool, error) {
	dim := sc.New.Dim()

	for _, s := range sc.SimplexDiff(dim).Added() {
		if _, err := ToCycle(s, sc.New.BoundaryCycles()); err != nil {
			return false, err
		}
	}
	for _, s := range sc.SimplexDiff(dim).Removed() {
		if _, err := ToCycle(s, sc.Old.BoundaryCycles()); err != nil {
			return false, err
		}
	}

	return true, nil
}

// ToCycle finds the unique cycle in cycles whose node set equals s's. It is
// exported for labelupdate.Build, which needs to locate the boundary cycle
// a newly added or removed top-dimensional simplex bounds.
func ToCycle(s simplex.Simplex, cycles []*cmap.Cycle) (*cmap.Cycle, error) {
	var found *cmap.Cycle
	count := 0
	for _, c := range cycles {
		if simplex.NewSimplex(c.Nodes()).Equal(s) {
			found = c
			count++
		}
	}

	switch count {
	case 0:
		return nil, ErrCycleNotAssociated
	case 1:
		return found, nil
	default:
		return nil, ErrCycleAmbiguous
	}
}
