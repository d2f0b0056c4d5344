// Package rotation computes the RotationInfo structures that feed
// cmap.CombinatorialMap: the cyclic ordering of darts around a vertex in
// 2D, and of oriented triangles around a half-edge in 3D, derived purely
// from point coordinates and the alphacomplex skeleton that survives to a
// given radius.
package rotation
