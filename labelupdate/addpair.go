package labelupdate

import (
	"fmt"

	"github.com/sentrymesh/evasion/cmap"
)

// AddPair models adding an edge and the 2-simplex it bounds together: case
// tuple (1,0,1,0,2,1). It behaves like Add1 except the new cycle that the
// added simplex bounds is forced to false instead of inheriting the old
// cycle's label.
type AddPair struct {
	OldCycle  *cmap.Cycle
	NewCycles []*cmap.Cycle // len 2
	NewFace   *cmap.Cycle   // the member of NewCycles bounded by the added simplex
}

func (p AddPair) CaseName() string { return "Add edge and 2-simplex" }

func (p AddPair) IsAtomic() bool { return true }

func (p AddPair) CyclesAdded() []*cmap.Cycle { return p.NewCycles }

func (p AddPair) CyclesRemoved() []*cmap.Cycle { return []*cmap.Cycle{p.OldCycle} }

func (p AddPair) Mapping(lookup Lookup) (map[string]bool, error) {
	label, ok := lookup.Get(p.OldCycle)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingLabel, p.OldCycle.Key())
	}
	out := make(map[string]bool, len(p.NewCycles))
	for _, c := range p.NewCycles {
		if c.Key() == p.NewFace.Key() {
			out[c.Key()] = false
			continue
		}
		out[c.Key()] = label
	}

	return out, nil
}
