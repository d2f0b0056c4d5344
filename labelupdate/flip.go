package labelupdate

import "github.com/sentrymesh/evasion/cmap"

// Flip models a Delaunay flip: case tuple (1,1,2,2,2,2). Two filled
// 2-simplices (and their cycles, both already false) are replaced by two
// differently-arranged filled 2-simplices across the same quadrilateral; the
// new cycles are false for the same reason the old ones were.
type Flip struct {
	OldCycles []*cmap.Cycle // len 2
	NewCycles []*cmap.Cycle // len 2
}

func (f Flip) CaseName() string { return "Delaunay flip" }

func (f Flip) IsAtomic() bool { return true }

func (f Flip) CyclesAdded() []*cmap.Cycle { return f.NewCycles }

func (f Flip) CyclesRemoved() []*cmap.Cycle { return f.OldCycles }

func (f Flip) Mapping(Lookup) (map[string]bool, error) {
	out := make(map[string]bool, len(f.NewCycles))
	for _, c := range f.NewCycles {
		out[c.Key()] = false
	}

	return out, nil
}
