package labelupdate

import "github.com/sentrymesh/evasion/cmap"

// Lookup reads a cycle's current label. labelling.CycleLabelling satisfies
// this structurally; labelupdate never imports the labelling package.
type Lookup interface {
	Get(cycle *cmap.Cycle) (label bool, ok bool)
}

// LabelUpdate is one member of the closed catalogue of atomic transitions
// between two consecutive topologies. Build dispatches a statechange.Case()
// tuple to the concrete type that models it; everything outside the
// catalogue becomes NonAtomic.
type LabelUpdate interface {
	// CaseName is the human-readable name of this transition, e.g. "Add
	// edge" or "Delaunay flip" — used for logging and diagnostics only.
	CaseName() string

	// IsAtomic reports whether this transition can be applied directly. A
	// NonAtomic update always returns false; every other concrete type
	// returns true, since Build only constructs them once the matching case
	// tuple's shape has already been confirmed.
	IsAtomic() bool

	// CyclesAdded lists boundary cycles a labelling must gain an entry for
	// before Mapping is applied (labelling.Update seeds each to true, then
	// Mapping's value overwrites it).
	CyclesAdded() []*cmap.Cycle

	// CyclesRemoved lists boundary cycles a labelling must discard after
	// Mapping is applied. Removing a key that was never present is a no-op.
	CyclesRemoved() []*cmap.Cycle

	// Mapping computes the cycle-key -> label assignments this transition
	// makes, reading any label it depends on through lookup. It returns
	// ErrMissingLabel if a cycle it needed to read is absent from lookup.
	Mapping(lookup Lookup) (map[string]bool, error)
}
