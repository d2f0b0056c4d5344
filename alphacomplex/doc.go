// Package alphacomplex wraps a filtered Čech/alpha complex truncated at a
// sensing radius, behind a small Kernel trait so the core combinatorial
// layer never depends on a specific Delaunay/alpha-shape library (spec.md
// §9 "External alpha library").
//
// Complex exposes simplices by dimension and the vertex set present at the
// current filtration; Kernel implementations decide how those are computed.
// BruteForceKernel is the in-repo default: it computes the true Čech
// complex (via the smallest enclosing ball of each candidate simplex) up to
// dimension 3, since no Delaunay/alpha-shape library exists anywhere in
// this module's dependency family. Callers that have one can swap in their
// own Kernel without touching anything above this package.
package alphacomplex
