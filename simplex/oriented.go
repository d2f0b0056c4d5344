package simplex

import "strings"

// OrientedSimplex is an ordered tuple of vertex indices representing one of
// the two orientations of a face: an edge (len==2) or a triangle (len==3).
// It is the "dart" of the 3D combinatorial map (rotation.Dart plays the
// equivalent role in 2D, where darts are plain (u,v) edge tuples).
//
// Canonical form rotates the tuple so its minimum index comes first,
// without changing orientation (a cyclic rotation of a triangle's vertices
// preserves which of the two orientations it represents). Hashing an
// OrientedSimplex hashes its canonical form, so all rotations of the same
// oriented triangle collide to one key.
type OrientedSimplex struct {
	verts []int
}

// NewOrientedSimplex builds an OrientedSimplex from an ordered vertex tuple.
// Panics are never used for malformed input; validate via Validate if the
// caller does not already guarantee distinct vertices.
func NewOrientedSimplex(verts []int) OrientedSimplex {
	cp := make([]int, len(verts))
	copy(cp, verts)

	return OrientedSimplex{verts: cp}
}

// Validate reports ErrEmptyNodes or ErrDuplicateNode for malformed tuples.
func (o OrientedSimplex) Validate() error {
	if len(o.verts) == 0 {
		return ErrEmptyNodes
	}
	seen := make(map[int]struct{}, len(o.verts))
	for _, v := range o.verts {
		if _, ok := seen[v]; ok {
			return ErrDuplicateNode
		}
		seen[v] = struct{}{}
	}

	return nil
}

// Dim returns the simplicial dimension: len(verts) - 1 (1 for an edge, 2 for
// a triangle).
func (o OrientedSimplex) Dim() int {
	return len(o.verts) - 1
}

// Nodes returns the ordered vertex tuple. The returned slice is a copy.
func (o OrientedSimplex) Nodes() []int {
	cp := make([]int, len(o.verts))
	copy(cp, o.verts)

	return cp
}

// ToSimplex drops orientation, returning the unordered Simplex with the same
// node set.
func (o OrientedSimplex) ToSimplex() Simplex {
	return NewSimplex(o.verts)
}

// Canonical rotates the tuple so the minimum index is first, preserving the
// cyclic order (and thus the orientation) of the remaining vertices.
func (o OrientedSimplex) Canonical() OrientedSimplex {
	n := len(o.verts)
	if n <= 1 {
		return o
	}
	minIdx := 0
	for i := 1; i < n; i++ {
		if o.verts[i] < o.verts[minIdx] {
			minIdx = i
		}
	}
	rotated := make([]int, n)
	for i := 0; i < n; i++ {
		rotated[i] = o.verts[(minIdx+i)%n]
	}

	return OrientedSimplex{verts: rotated}
}

// Reverse is the involution alpha: it returns the opposite orientation of
// the same face. For an edge it swaps the two endpoints; for a triangle it
// fixes the first vertex and swaps the other two, per spec.
func (o OrientedSimplex) Reverse() OrientedSimplex {
	switch len(o.verts) {
	case 2:
		return OrientedSimplex{verts: []int{o.verts[1], o.verts[0]}}
	case 3:
		return OrientedSimplex{verts: []int{o.verts[0], o.verts[2], o.verts[1]}}
	default:
		// Generic reversal for any other arity; not exercised by the 2D/3D
		// combinatorial maps but keeps Reverse total.
		rev := make([]int, len(o.verts))
		for i, v := range o.verts {
			rev[len(o.verts)-1-i] = v
		}

		return OrientedSimplex{verts: rev}
	}
}

// Key is the canonical hash/equality witness: the Canonical() form's node
// tuple joined by "-".
func (o OrientedSimplex) Key() string {
	return joinInts(o.Canonical().verts)
}

// Equal reports whether two oriented simplices represent the same
// orientation of the same face.
func (o OrientedSimplex) Equal(other OrientedSimplex) bool {
	return o.Key() == other.Key()
}

// HalfEdge returns the first two vertices (u, v) as an ordered pair; for a
// triangle dart this is the half-edge RotationInfo3D groups by.
func (o OrientedSimplex) HalfEdge() (int, int) {
	return o.verts[0], o.verts[1]
}

// String renders the ordered tuple for diagnostics, e.g. "(1,4,7)".
func (o OrientedSimplex) String() string {
	return "(" + strings.Join(strings.Split(joinInts(o.verts), "-"), ",") + ")"
}
