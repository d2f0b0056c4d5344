package labelupdate

import "github.com/sentrymesh/evasion/cmap"

// Remove2 models un-filling a single 2-simplex: case tuple (0,0,0,1,0,0).
// The cycle it used to bound persists with whatever label it already had
// (typically false, since a filled cycle cannot hide an intruder) — this
// transition never changes any label.
type Remove2 struct{}

func (Remove2) CaseName() string { return "Remove 2-simplex" }

func (Remove2) IsAtomic() bool { return true }

func (Remove2) CyclesAdded() []*cmap.Cycle { return nil }

func (Remove2) CyclesRemoved() []*cmap.Cycle { return nil }

func (Remove2) Mapping(Lookup) (map[string]bool, error) { return map[string]bool{}, nil }
