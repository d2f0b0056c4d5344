package alphacomplex

// SkeletonEntry is one simplex surfaced by a Kernel at a given filtration
// value (the squared radius parameter at which that simplex first appears).
type SkeletonEntry struct {
	Nodes      []int
	Filtration float64
}

// Kernel isolates the combinatorial layer from a specific Delaunay/alpha
// library (spec.md §9). Build is called once per Topology construction;
// Skeleton(dim) must return every simplex of that dimension whose
// filtration value is <= the radius² passed to Build.
type Kernel interface {
	// Build computes the filtered complex for points up to maxAlphaSquare
	// (the sensing radius squared). Implementations must match the
	// external kernel's convention exactly: the filtration parameter is
	// radius-squared (spec.md §4.1).
	Build(points [][]float64, maxAlphaSquare float64) error

	// Skeleton returns all simplices of dimension dim present in the
	// complex built by the most recent Build call.
	Skeleton(dim int) []SkeletonEntry
}
