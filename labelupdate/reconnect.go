package labelupdate

import (
	"fmt"

	"github.com/sentrymesh/evasion/cmap"
)

// Reconnect models the fence re-forming a path that had pinched off a
// sub-region: case tuple (1,0,0,0,1,2) or (1,0,0,0,1,1), the inverse of
// Disconnect. The case tuple alone cannot say which of the (one or two)
// removed cycles was the one a labelling still tracks, so Mapping tries
// each Candidate in turn — mirroring the same ambiguity Disconnect resolves
// at construction time instead, since there the tie-break is by
// connectivity rather than by labelling membership.
type Reconnect struct {
	Candidates    []*cmap.Cycle // former enclosing cycle, 1 or 2 candidates
	NewCycle      *cmap.Cycle   // newly reachable boundary cycle
	JustConnected []*cmap.Cycle // cycles that regained reachability from the fence
	ClearedFaces  []*cmap.Cycle // boundary cycles bounded by a filled simplex, reset to false
}

func (r Reconnect) CaseName() string { return "Reconnect" }
func (r Reconnect) IsAtomic() bool   { return true }

func (r Reconnect) CyclesRemoved() []*cmap.Cycle { return r.Candidates }

func (r Reconnect) CyclesAdded() []*cmap.Cycle {
	return append([]*cmap.Cycle{r.NewCycle}, r.JustConnected...)
}

func (r Reconnect) Mapping(lookup Lookup) (map[string]bool, error) {
	var label bool
	found := false
	for _, c := range r.Candidates {
		if l, ok := lookup.Get(c); ok {
			label, found = l, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no labelled enclosing cycle among candidates", ErrMissingLabel)
	}

	out := map[string]bool{r.NewCycle.Key(): label}
	for _, c := range r.JustConnected {
		out[c.Key()] = label
	}
	for _, c := range r.ClearedFaces {
		out[c.Key()] = false
	}

	return out, nil
}
