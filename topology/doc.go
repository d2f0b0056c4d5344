// Package topology bundles an alphacomplex.Complex with its cmap.CombinatorialMap
// and exposes the queries statechange and labelling are built on: simplex
// lookups by dimension, boundary cycles, the distinguished alpha cycle (the
// outer fence of the patrolled region), and the fence-connectivity check used
// to decide whether a cycle could still be reached from outside. That check
// is vertex reachability from point 0 over the 1-skeleton (vertices and
// edges); no graph of faces joined through shared simplices is built.
package topology
