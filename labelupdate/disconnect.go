package labelupdate

import (
	"fmt"

	"github.com/sentrymesh/evasion/cmap"
)

// Disconnect models the fence pinching off a sub-region from the rest of
// the patrolled area: case tuple (0,1,0,0,2,1) or (0,1,0,0,1,1). Every cycle
// that loses its path back to the outer fence is forgotten — a labelling
// only ever tracks cycles an intruder could still reach from outside — but
// an intruder already known to be in one of those cycles is folded into the
// enclosing cycle's label first, so the information is not silently lost.
type Disconnect struct {
	OldCycle         *cmap.Cycle   // the fence cycle this step removed
	EnclosingCycle   *cmap.Cycle   // the new cycle that replaces it and stays reachable
	JustDisconnected []*cmap.Cycle // cycles no longer reachable from the fence after this step
}

func (d Disconnect) CaseName() string { return "Disconnect" }
func (d Disconnect) IsAtomic() bool   { return true }

func (d Disconnect) CyclesAdded() []*cmap.Cycle { return nil }

func (d Disconnect) CyclesRemoved() []*cmap.Cycle {
	return append([]*cmap.Cycle{d.OldCycle}, d.JustDisconnected...)
}

func (d Disconnect) Mapping(lookup Lookup) (map[string]bool, error) {
	oldLabel, ok := lookup.Get(d.OldCycle)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingLabel, d.OldCycle.Key())
	}
	intruderSub := false
	for _, c := range d.JustDisconnected {
		if label, ok := lookup.Get(c); ok {
			intruderSub = intruderSub || label
		}
	}

	return map[string]bool{d.EnclosingCycle.Key(): intruderSub || oldLabel}, nil
}
