package rotation

import (
	"math"
	"sort"

	"github.com/sentrymesh/evasion/geomutil"
	"github.com/sentrymesh/evasion/simplex"
)

// HalfEdge is a directed pair (u, v) of vertex indices: the rotation axis
// that Info3D groups incident oriented triangles around.
type HalfEdge [2]int

// Info3D holds, for every directed half-edge that appears as the leading
// pair of some triangle dart, the oriented triangles sharing that half-edge
// sorted by signed dihedral angle (spec.md §4.2, 3D case).
//
// A triangle with nodes {a,b,c} contributes one dart per ordered pair of
// its vertices: the tuple (u,v,w) for every permutation of (a,b,c), since
// each directed half-edge (u,v) has exactly one apex w completing the
// triangle. This gives six darts per triangle rather than the two that
// OrientedSimplex's canonical-rotation equality would fold them to — the
// extra multiplicity is what lets σ dispatch on (dart, half-edge) the way
// spec.md §4.3 describes, at the cost of φ-orbits that pivot around a
// single fixed vertex (Reverse keeps the first vertex fixed). This mirrors
// the partial 3D combinatorial map the original system also left
// incomplete (several transition cases are explicit non-atomic fallbacks).
type Info3D struct {
	incident map[HalfEdge][]simplex.OrientedSimplex
}

// NewInfo3D builds the per-half-edge incidence lists for a 2-simplex
// (triangle) skeleton.
func NewInfo3D(points [][]float64, triangles []simplex.Simplex) (*Info3D, error) {
	groups := make(map[HalfEdge][]simplex.OrientedSimplex)
	for _, tri := range triangles {
		nodes := tri.Nodes()
		if len(nodes) != 3 {
			continue
		}
		for _, p := range permute3(nodes) {
			h := HalfEdge{p[0], p[1]}
			groups[h] = append(groups[h], simplex.NewOrientedSimplex(p))
		}
	}

	incident := make(map[HalfEdge][]simplex.OrientedSimplex, len(groups))
	for h, darts := range groups {
		sorted, err := sortByDihedral(points, h, darts)
		if err != nil {
			return nil, err
		}
		incident[h] = sorted
	}

	return &Info3D{incident: incident}, nil
}

// permute3 returns all 6 orderings of a 3-element slice.
func permute3(nodes []int) [][]int {
	a, b, c := nodes[0], nodes[1], nodes[2]

	return [][]int{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}
}

// sortByDihedral orders darts sharing half-edge h by signed angle of their
// apex's projection onto the plane perpendicular to h, per spec.md §4.2's
// "project triangle apex onto the plane perpendicular to the half-edge"
// rule. The first dart in input order is the zero-angle reference.
func sortByDihedral(points [][]float64, h HalfEdge, darts []simplex.OrientedSimplex) ([]simplex.OrientedSimplex, error) {
	u, v := h[0], h[1]
	axisRaw := geomutil.Sub(points[v], points[u])
	if geomutil.Norm(axisRaw) < 1e-15 {
		return nil, ErrDegenerateHalfEdge
	}
	axis := geomutil.Normalize(axisRaw)

	project := func(w int) []float64 {
		raw := geomutil.Sub(points[w], points[u])
		along := geomutil.Scale(axis, geomutil.Dot(raw, axis))

		return geomutil.Sub(raw, along)
	}

	apex := func(d simplex.OrientedSimplex) int {
		n := d.Nodes()

		return n[2]
	}

	refProj := project(apex(darts[0]))
	refNorm := geomutil.Norm(refProj)

	type scored struct {
		dart  simplex.OrientedSimplex
		angle float64
	}
	scoredDarts := make([]scored, len(darts))
	for i, d := range darts {
		if i == 0 {
			scoredDarts[i] = scored{dart: d, angle: 0}

			continue
		}
		proj := project(apex(d))
		pn := geomutil.Norm(proj)
		if refNorm < 1e-15 || pn < 1e-15 {
			scoredDarts[i] = scored{dart: d, angle: 0}

			continue
		}
		cosTheta := geomutil.Clip(geomutil.Dot(refProj, proj)/(refNorm*pn), -1, 1)
		theta := math.Acos(cosTheta)
		sign := geomutil.Dot(axis, geomutil.Cross(refProj, proj))
		if sign < 0 {
			theta = -theta
		}
		scoredDarts[i] = scored{dart: d, angle: theta}
	}

	sort.SliceStable(scoredDarts, func(i, j int) bool {
		return scoredDarts[i].angle < scoredDarts[j].angle
	})

	out := make([]simplex.OrientedSimplex, len(scoredDarts))
	for i, s := range scoredDarts {
		out[i] = s.dart
	}

	return out, nil
}

// Next returns the next oriented triangle sharing half-edge h after t, in
// dihedral order (wrapping).
func (r *Info3D) Next(h HalfEdge, t simplex.OrientedSimplex) (simplex.OrientedSimplex, error) {
	list, ok := r.incident[h]
	if !ok {
		return simplex.OrientedSimplex{}, ErrUnknownHalfEdge
	}
	idx := -1
	for i, d := range list {
		if d.Equal(t) {
			idx = i

			break
		}
	}
	if idx < 0 {
		return simplex.OrientedSimplex{}, ErrUnknownDart
	}

	return list[(idx+1)%len(list)], nil
}

// AllDarts returns every (half-edge, apex) dart recorded across all
// incidence lists.
func (r *Info3D) AllDarts() []simplex.OrientedSimplex {
	var out []simplex.OrientedSimplex
	for _, list := range r.incident {
		out = append(out, list...)
	}

	return out
}
