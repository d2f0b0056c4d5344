package labelupdate

import "github.com/sentrymesh/evasion/cmap"

// Trivial is the no-op transition: the case tuple is all zero, or the only
// change is an isolated point connecting to or disconnecting from the rest
// of the region (neither touches an edge, face, or boundary cycle that
// carries a label).
type Trivial struct{}

func (Trivial) CaseName() string { return "No-op" }

func (Trivial) IsAtomic() bool { return true }

func (Trivial) CyclesAdded() []*cmap.Cycle { return nil }

func (Trivial) CyclesRemoved() []*cmap.Cycle { return nil }

func (Trivial) Mapping(Lookup) (map[string]bool, error) { return map[string]bool{}, nil }
