package cmap

// Dart is the common surface both rotation.Dart (2D half-edges) and
// simplex.OrientedSimplex (3D oriented triangles) already satisfy: a
// hashable identity plus the vertex indices it touches. CombinatorialMap
// is generic over it so Topology does not need to know which dimension's
// rotation system backs a given map.
type Dart interface {
	Key() string
	Nodes() []int
}

// CombinatorialMap is the α/σ/φ permutation system over darts, spec.md
// §4.3. Map2D and Map3D are its two concrete implementations.
type CombinatorialMap interface {
	Alpha(d Dart) Dart
	Sigma(d Dart) (Dart, error)
	Phi(d Dart) (Dart, error)
	BoundaryCycles() []*Cycle
	GetCycle(d Dart) (*Cycle, error)
}
