package simplex

import "errors"

// Sentinel errors for the simplex package.
var (
	// ErrEmptyNodes indicates a Simplex or OrientedSimplex was constructed
	// with no vertex indices.
	ErrEmptyNodes = errors.New("simplex: empty node set")

	// ErrDuplicateNode indicates a vertex index appeared more than once in
	// an OrientedSimplex, where position (not just membership) matters.
	ErrDuplicateNode = errors.New("simplex: duplicate node in oriented simplex")
)
