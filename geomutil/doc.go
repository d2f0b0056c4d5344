// Package geomutil provides the small vector-geometry primitives shared by
// alphacomplex (smallest enclosing ball) and rotation (angle sort, dihedral
// projection): the "Geometry helpers" component of spec.md §2.
//
// All functions operate on plain []float64 points of length 2 or 3; there
// is no Vec2/Vec3 wrapper type because every caller already carries points
// as [][]float64 (the external interface's "ordered sequence of coordinate
// tuples", spec.md §6).
package geomutil
