package topology

import (
	"github.com/sentrymesh/evasion/alphacomplex"
	"github.com/sentrymesh/evasion/cmap"
	"github.com/sentrymesh/evasion/rotation"
	"github.com/sentrymesh/evasion/simplex"
)

// Topology bundles the filtered alpha complex with the combinatorial map
// built over its skeleton. It is the unit statechange.StateChange diffs
// between two snapshots.
type Topology struct {
	complex *alphacomplex.Complex
	cmap    cmap.CombinatorialMap
	dim     int
}

// GenerateTopology builds the alpha complex for points at the given sensing
// radius via kernel, then dispatches to Map2D or Map3D depending on the
// complex's ambient dimension.
func GenerateTopology(points [][]float64, radius float64, kernel alphacomplex.Kernel) (*Topology, error) {
	complex, err := alphacomplex.Build(points, radius, kernel)
	if err != nil {
		return nil, err
	}

	switch complex.Dim() {
	case 2:
		edges := complex.Simplices(1)
		info := rotation.NewInfo2D(points, edges)

		return &Topology{complex: complex, cmap: cmap.NewMap2D(info), dim: 2}, nil
	case 3:
		triangles := complex.Simplices(2)
		info, err := rotation.NewInfo3D(points, triangles)
		if err != nil {
			return nil, err
		}

		return &Topology{complex: complex, cmap: cmap.NewMap3D(info), dim: 3}, nil
	default:
		return nil, ErrUnsupportedDimension
	}
}

// Dim returns the ambient dimension (2 or 3).
func (t *Topology) Dim() int {
	return t.dim
}

// Simplices returns every d-simplex currently in the alpha complex.
func (t *Topology) Simplices(d int) []simplex.Simplex {
	return t.complex.Simplices(d)
}

// SimplexSet is Simplices(d) keyed by Simplex.Key(), for statechange's
// set-difference computation.
func (t *Topology) SimplexSet(d int) map[string]simplex.Simplex {
	return t.complex.SimplexSet(d)
}

// BoundaryCycles returns every φ-orbit of the combinatorial map except the
// alpha cycle itself. The alpha cycle represents the unbounded exterior of
// the patrolled region, not a patrol-able cell an intruder could occupy, so
// it is never a candidate for tracking, diffing, or labelling — the same
// exclusion the original construction applies once, up front, so every
// downstream consumer (statechange diffs, labelupdate candidate search,
// labelling construction) inherits it for free.
func (t *Topology) BoundaryCycles() []*cmap.Cycle {
	all := t.cmap.BoundaryCycles()

	alpha, err := t.AlphaCycle()
	if err != nil {
		return all
	}

	out := make([]*cmap.Cycle, 0, len(all))
	for _, c := range all {
		if c.Key() == alpha.Key() {
			continue
		}
		out = append(out, c)
	}

	return out
}

// AlphaCycle returns the distinguished boundary cycle containing the
// canonical outside dart: (0,1) in 2D, the oriented triangle (0,1,2) in 3D.
// This is the cycle spec.md treats as "outside the patrolled region" — the
// fence a cycle must reach to be considered still connected to the exterior,
// and the one boundary cycle BoundaryCycles itself never returns.
func (t *Topology) AlphaCycle() (*cmap.Cycle, error) {
	switch t.dim {
	case 2:
		return t.cmap.GetCycle(rotation.Dart{0, 1})
	case 3:
		return t.cmap.GetCycle(simplex.NewOrientedSimplex([]int{0, 1, 2}))
	default:
		return nil, ErrUnsupportedDimension
	}
}

// IsBoundary reports whether cycle is the boundary of a top-dimensional
// simplex: its node set, read as an unordered Simplex, is itself present in
// Simplices(Dim()).
func (t *Topology) IsBoundary(cycle *cmap.Cycle) bool {
	s := simplex.NewSimplex(cycle.Nodes())
	_, ok := t.complex.SimplexSet(t.dim)[s.Key()]

	return ok
}

// HomologyGenerators returns every boundary cycle that is not the boundary
// of a top-dimensional simplex: the cycles that could enclose an unfilled
// void an intruder might hide in.
func (t *Topology) HomologyGenerators() []*cmap.Cycle {
	var out []*cmap.Cycle
	for _, c := range t.BoundaryCycles() {
		if !t.IsBoundary(c) {
			out = append(out, c)
		}
	}

	return out
}
