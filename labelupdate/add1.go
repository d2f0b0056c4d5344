package labelupdate

import (
	"fmt"

	"github.com/sentrymesh/evasion/cmap"
)

// Add1 models adding a single edge that splits one boundary cycle into two:
// case tuple (1,0,0,0,2,1). Both halves inherit the old cycle's label.
type Add1 struct {
	OldCycle  *cmap.Cycle
	NewCycles []*cmap.Cycle // len 2
}

func (a Add1) CaseName() string { return "Add edge" }

func (a Add1) IsAtomic() bool { return true }

func (a Add1) CyclesAdded() []*cmap.Cycle { return a.NewCycles }

func (a Add1) CyclesRemoved() []*cmap.Cycle { return []*cmap.Cycle{a.OldCycle} }

func (a Add1) Mapping(lookup Lookup) (map[string]bool, error) {
	label, ok := lookup.Get(a.OldCycle)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingLabel, a.OldCycle.Key())
	}
	out := make(map[string]bool, len(a.NewCycles))
	for _, c := range a.NewCycles {
		out[c.Key()] = label
	}

	return out, nil
}
