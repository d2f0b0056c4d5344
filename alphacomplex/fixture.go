package alphacomplex

// FixtureKernel is a Kernel backed by a precomputed, fixed skeleton rather
// than a live geometric computation. It is used by this module's own tests
// to pin down an exact topology for a scenario (spec.md §8's concrete
// end-to-end scenarios), and doubles as the mechanism for replaying a
// previously serialized complex without recomputing it.
type FixtureKernel struct {
	byDim map[int][]SkeletonEntry
}

// NewFixtureKernel builds a FixtureKernel from explicit per-dimension node
// lists. Filtration values are not modelled (always 0); callers that need
// to exercise filtration-aware behavior should use BruteForceKernel.
func NewFixtureKernel(simplicesByDim map[int][][]int) *FixtureKernel {
	byDim := make(map[int][]SkeletonEntry, len(simplicesByDim))
	for dim, sets := range simplicesByDim {
		entries := make([]SkeletonEntry, len(sets))
		for i, nodes := range sets {
			entries[i] = SkeletonEntry{Nodes: nodes, Filtration: 0}
		}
		byDim[dim] = entries
	}

	return &FixtureKernel{byDim: byDim}
}

// Build is a no-op: FixtureKernel ignores points/maxAlphaSquare and always
// replays the skeleton it was constructed with.
func (k *FixtureKernel) Build(_ [][]float64, _ float64) error {
	return nil
}

// Skeleton returns the fixed entries for dim, or nil if dim was not
// supplied to NewFixtureKernel.
func (k *FixtureKernel) Skeleton(dim int) []SkeletonEntry {
	return k.byDim[dim]
}
