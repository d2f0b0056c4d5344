// Package cmap implements the combinatorial-map layer: the α, σ, φ
// permutations over darts and the boundary-cycle enumeration that falls
// out of φ's orbits (spec.md §4.3). Map2D and Map3D share the
// CombinatorialMap interface so topology.Topology can be parameterised
// over either, the way spec.md §9's redesign note asks for.
package cmap
