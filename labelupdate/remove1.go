package labelupdate

import (
	"fmt"

	"github.com/sentrymesh/evasion/cmap"
)

// Remove1 models removing a single edge that merges two boundary cycles
// into one: case tuple (0,1,0,0,1,2). The merged cycle may hide an intruder
// if either half could.
type Remove1 struct {
	OldCycles []*cmap.Cycle // len 2
	NewCycle  *cmap.Cycle
}

func (r Remove1) CaseName() string { return "Remove edge" }

func (r Remove1) IsAtomic() bool { return true }

func (r Remove1) CyclesAdded() []*cmap.Cycle { return []*cmap.Cycle{r.NewCycle} }

func (r Remove1) CyclesRemoved() []*cmap.Cycle { return r.OldCycles }

func (r Remove1) Mapping(lookup Lookup) (map[string]bool, error) {
	merged, err := mergeLabel(lookup, r.OldCycles)
	if err != nil {
		return nil, err
	}

	return map[string]bool{r.NewCycle.Key(): merged}, nil
}

// mergeLabel ORs the current labels of cycles together.
func mergeLabel(lookup Lookup, cycles []*cmap.Cycle) (bool, error) {
	merged := false
	for _, c := range cycles {
		label, ok := lookup.Get(c)
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrMissingLabel, c.Key())
		}
		merged = merged || label
	}

	return merged, nil
}
