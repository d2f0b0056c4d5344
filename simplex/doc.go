// Package simplex defines the immutable value types shared by the
// combinatorial layer: Simplex (an unordered vertex set) and OrientedSimplex
// (one of the two orientations of an edge or triangle, i.e. a "dart" in 3D).
//
// Neither type is a comparable Go value (both hold a slice); each exposes a
// canonical string Key() that callers use as the map key, matching the
// "equality and hashing on the set" invariant each type documents.
package simplex
