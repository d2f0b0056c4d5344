package labelupdate

import (
	"fmt"

	"github.com/sentrymesh/evasion/cmap"
)

// NonAtomic is returned for any case tuple outside the closed catalogue, or
// whose shape failed a sub-simplex consistency check. The simulation driver
// bisects the step that produced it rather than committing it.
type NonAtomic struct {
	Case []int
}

func (n NonAtomic) CaseName() string { return "NonAtomic" }

func (n NonAtomic) IsAtomic() bool { return false }

func (n NonAtomic) CyclesAdded() []*cmap.Cycle { return nil }

func (n NonAtomic) CyclesRemoved() []*cmap.Cycle { return nil }

func (n NonAtomic) Mapping(Lookup) (map[string]bool, error) {
	return nil, fmt.Errorf("labelupdate: case %v is not atomic", n.Case)
}
