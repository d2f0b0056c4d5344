package simplex

import (
	"sort"
	"strconv"
	"strings"
)

// Simplex is an unordered set of vertex indices. Dimension is len(nodes)-1.
// Two Simplex values are equal iff their node sets are equal; Key() is the
// canonical hash/equality witness, so Simplex is safe to use as a map key
// after calling Key(), and Equal/Key never depend on construction order.
//
// Invariant: vertex indices reference the current point list (enforced by
// callers; Simplex itself does not hold a reference to the point list).
type Simplex struct {
	nodes []int // sorted ascending, de-duplicated
}

// NewSimplex builds a Simplex from an arbitrary (possibly unsorted) slice of
// vertex indices. Duplicate indices collapse to one, matching set semantics.
func NewSimplex(nodes []int) Simplex {
	cp := make([]int, len(nodes))
	copy(cp, nodes)
	sort.Ints(cp)
	cp = dedupSorted(cp)

	return Simplex{nodes: cp}
}

func dedupSorted(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}

// Nodes returns the sorted vertex indices. The returned slice is a copy;
// callers may not mutate the Simplex through it.
func (s Simplex) Nodes() []int {
	cp := make([]int, len(s.nodes))
	copy(cp, s.nodes)

	return cp
}

// Dim returns the simplicial dimension: |nodes| - 1.
func (s Simplex) Dim() int {
	return len(s.nodes) - 1
}

// Key is the canonical string form used for equality, hashing, and as a map
// key: sorted node indices joined by "-", e.g. "1-4-7".
func (s Simplex) Key() string {
	return joinInts(s.nodes)
}

func joinInts(nodes []int) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, "-")
}

// Equal reports whether two simplices have the same node set.
func (s Simplex) Equal(other Simplex) bool {
	return s.Key() == other.Key()
}

// IsSubface reports whether s's node set is a subset of other's.
func (s Simplex) IsSubface(other Simplex) bool {
	set := make(map[int]struct{}, len(other.nodes))
	for _, n := range other.nodes {
		set[n] = struct{}{}
	}
	for _, n := range s.nodes {
		if _, ok := set[n]; !ok {
			return false
		}
	}

	return true
}

// String renders the node set for diagnostics, e.g. "{1,4,7}".
func (s Simplex) String() string {
	return "{" + strings.Join(strings.Split(joinInts(s.nodes), "-"), ",") + "}"
}
