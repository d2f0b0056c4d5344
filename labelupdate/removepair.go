package labelupdate

import "github.com/sentrymesh/evasion/cmap"

// RemovePair models removing an edge and the 2-simplex it bounded together:
// case tuple (0,1,0,1,1,2). It merges exactly like Remove1 — the removed
// face's cycle was already false by the filled-cycle invariant, so the OR
// merge behaves the same either way.
type RemovePair struct {
	OldCycles []*cmap.Cycle // len 2
	NewCycle  *cmap.Cycle
}

func (p RemovePair) CaseName() string { return "Remove edge and 2-simplex" }

func (p RemovePair) IsAtomic() bool { return true }

func (p RemovePair) CyclesAdded() []*cmap.Cycle { return []*cmap.Cycle{p.NewCycle} }

func (p RemovePair) CyclesRemoved() []*cmap.Cycle { return p.OldCycles }

func (p RemovePair) Mapping(lookup Lookup) (map[string]bool, error) {
	merged, err := mergeLabel(lookup, p.OldCycles)
	if err != nil {
		return nil, err
	}

	return map[string]bool{p.NewCycle.Key(): merged}, nil
}
