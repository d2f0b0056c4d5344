package labelupdate

import "github.com/sentrymesh/evasion/cmap"

// Add2 models filling a single 2-simplex: case tuple (0,0,1,0,0,0). The
// cycle that simplex bounds can no longer hide an intruder once filled.
type Add2 struct {
	Cycle *cmap.Cycle
}

func (a Add2) CaseName() string { return "Add 2-simplex" }

func (a Add2) IsAtomic() bool { return true }

func (a Add2) CyclesAdded() []*cmap.Cycle { return nil }

func (a Add2) CyclesRemoved() []*cmap.Cycle { return nil }

func (a Add2) Mapping(Lookup) (map[string]bool, error) {
	return map[string]bool{a.Cycle.Key(): false}, nil
}
