package alphacomplex

import (
	"math"

	"github.com/sentrymesh/evasion/geomutil"
)

// BruteForceKernel computes the true Čech complex directly from point
// coordinates: a k-simplex is present at filtration value r² iff the
// smallest enclosing ball (SEB) of its k+1 vertices has squared radius r².
// Dimensions 0 through 3 are supported (points, edges, triangles,
// tetrahedra), matching spec.md §3's AlphaComplex contract.
//
// This is the one component in the repository built on the standard
// library alone: no Delaunay/alpha-shape library exists anywhere in this
// module's dependency family (see DESIGN.md), so the "Fixtures for alpha
// library" component (spec.md §9) needed a concrete default, and a direct
// Čech computation is the most literal reading of "filtered Čech/alpha
// complex" that doesn't require a Delaunay black box.
//
// Complexity: naive O(n^(k+1)) candidate enumeration per dimension k,
// pruned by a pairwise-distance precheck (any two vertices of a valid
// k-simplex must be within 2*radius of each other). Fine for the sensor
// counts this engine targets (tens to low hundreds); not a substitute for
// a real Delaunay-filtered alpha shape at scale.
type BruteForceKernel struct {
	points [][]float64
	maxSq  float64
	dim    int
}

// Build stores the point list and filtration cutoff for later Skeleton
// calls. maxAlphaSquare is radius², per the Kernel contract.
func (k *BruteForceKernel) Build(points [][]float64, maxAlphaSquare float64) error {
	if len(points) == 0 {
		return ErrTooFewPoints
	}
	k.points = points
	k.maxSq = maxAlphaSquare
	k.dim = len(points[0])

	return nil
}

// Skeleton returns all dim-simplices whose SEB radius² <= maxAlphaSquare.
func (k *BruteForceKernel) Skeleton(dim int) []SkeletonEntry {
	n := len(k.points)
	switch dim {
	case 0:
		out := make([]SkeletonEntry, n)
		for i := range k.points {
			out[i] = SkeletonEntry{Nodes: []int{i}, Filtration: 0}
		}

		return out
	case 1:
		return k.combinations(2)
	case 2:
		return k.combinations(3)
	case 3:
		if k.dim < 3 {
			return nil
		}

		return k.combinations(4)
	default:
		return nil
	}
}

// combinations enumerates all size-r subsets of point indices, pruned by a
// pairwise-distance check, and keeps those whose SEB filtration clears the
// cutoff.
func (k *BruteForceKernel) combinations(r int) []SkeletonEntry {
	n := len(k.points)
	limit := 4 * k.maxSq // (2*radius)^2
	var out []SkeletonEntry
	idx := make([]int, r)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == r {
			if !k.pairwiseWithinLimit(idx, limit) {
				return
			}
			pts := make([][]float64, r)
			for i, ix := range idx {
				pts[i] = k.points[ix]
			}
			_, radiusSq := smallestEnclosingBall(pts)
			if radiusSq <= k.maxSq {
				nodes := make([]int, r)
				copy(nodes, idx)
				out = append(out, SkeletonEntry{Nodes: nodes, Filtration: radiusSq})
			}

			return
		}
		for i := start; i <= n-(r-depth); i++ {
			idx[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)

	return out
}

func (k *BruteForceKernel) pairwiseWithinLimit(idx []int, limit float64) bool {
	for i := 0; i < len(idx); i++ {
		for j := i + 1; j < len(idx); j++ {
			if geomutil.SquaredDist(k.points[idx[i]], k.points[idx[j]]) > limit {
				return false
			}
		}
	}

	return true
}

// smallestEnclosingBall computes the center and squared radius of the
// minimum ball enclosing all of pts (Welzl's algorithm), specialised to the
// small, fixed-size point sets a Čech-complex simplex ever needs (at most 4
// points, since we truncate at dimension 3).
func smallestEnclosingBall(pts [][]float64) ([]float64, float64) {
	dim := len(pts[0])
	shuffled := make([][]float64, len(pts))
	copy(shuffled, pts)

	return welzl(shuffled, nil, dim)
}

func welzl(p, r [][]float64, dim int) ([]float64, float64) {
	if len(p) == 0 || len(r) == dim+1 {
		return trivialBall(r, dim)
	}
	last := p[len(p)-1]
	rest := p[:len(p)-1]
	center, radiusSq := welzl(rest, r, dim)
	if center != nil && geomutil.SquaredDist(center, last) <= radiusSq+1e-12 {
		return center, radiusSq
	}

	return welzl(rest, append(append([][]float64{}, r...), last), dim)
}

// trivialBall computes the ball determined by 0..dim+1 boundary points.
func trivialBall(r [][]float64, dim int) ([]float64, float64) {
	switch len(r) {
	case 0:
		return nil, 0
	case 1:
		return r[0], 0
	case 2:
		c := geomutil.Midpoint(r[0], r[1])

		return c, geomutil.SquaredDist(c, r[0])
	case 3:
		if c, ok := circumcenterTriangle(r[0], r[1], r[2]); ok {
			return c, geomutil.SquaredDist(c, r[0])
		}

		return fallbackBall(r)
	case 4:
		if c, ok := circumcenter3D(r[0], r[1], r[2], r[3]); ok {
			return c, geomutil.SquaredDist(c, r[0])
		}

		return fallbackBall(r)
	default:
		return fallbackBall(r)
	}
}

// fallbackBall handles degenerate (colinear/coplanar) boundary sets by
// falling back to the ball of the farthest-apart pair. This slightly
// over-estimates coverage of the remaining point(s) in genuinely degenerate
// configurations, which are measure-zero in practice for moving sensors.
func fallbackBall(r [][]float64) ([]float64, float64) {
	var bestI, bestJ int
	best := -1.0
	for i := 0; i < len(r); i++ {
		for j := i + 1; j < len(r); j++ {
			d := geomutil.SquaredDist(r[i], r[j])
			if d > best {
				best, bestI, bestJ = d, i, j
			}
		}
	}
	c := geomutil.Midpoint(r[bestI], r[bestJ])

	return c, geomutil.SquaredDist(c, r[bestI])
}

// circumcenterTriangle computes the circumcenter of a,b,c in their own
// plane, via the cross-product formula; works for both 2D and 3D input
// (2D points are zero-padded to 3D and the result is truncated back).
func circumcenterTriangle(a, b, c []float64) ([]float64, bool) {
	dim := len(a)
	pa, pb, pc := geomutil.Pad3(a), geomutil.Pad3(b), geomutil.Pad3(c)
	av := geomutil.Sub(pb, pa)
	bv := geomutil.Sub(pc, pa)
	crossAB := geomutil.Cross(av, bv)
	denom := 2 * geomutil.Dot(crossAB, crossAB)
	if math.Abs(denom) < 1e-12 {
		return nil, false
	}
	aa, bb := geomutil.Dot(av, av), geomutil.Dot(bv, bv)
	t1 := geomutil.Scale(bv, aa)
	t2 := geomutil.Scale(av, bb)
	num := geomutil.Cross(geomutil.Sub(t1, t2), crossAB)
	offset := geomutil.Scale(num, 1/denom)
	center := make([]float64, 3)
	for i := range center {
		center[i] = pa[i] + offset[i]
	}

	return center[:dim], true
}

// circumcenter3D solves the 3x3 linear system obtained from
// |center-p_i|^2 = |center-p_0|^2 for i=1,2,3 via Cramer's rule.
func circumcenter3D(p0, p1, p2, p3 []float64) ([]float64, bool) {
	a := geomutil.Sub(p1, p0)
	b := geomutil.Sub(p2, p0)
	c := geomutil.Sub(p3, p0)
	rhs := []float64{
		0.5 * (geomutil.Dot(p1, p1) - geomutil.Dot(p0, p0)),
		0.5 * (geomutil.Dot(p2, p2) - geomutil.Dot(p0, p0)),
		0.5 * (geomutil.Dot(p3, p3) - geomutil.Dot(p0, p0)),
	}
	mat := [3][3]float64{
		{a[0], a[1], a[2]},
		{b[0], b[1], b[2]},
		{c[0], c[1], c[2]},
	}
	det := det3(mat)
	if math.Abs(det) < 1e-12 {
		return nil, false
	}
	center := make([]float64, 3)
	for col := 0; col < 3; col++ {
		m := mat
		for row := 0; row < 3; row++ {
			m[row][col] = rhs[row]
		}
		center[col] = det3(m) / det
	}

	return center, true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
