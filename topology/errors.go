package topology

import "errors"

// Sentinel errors for the topology package.
var (
	// ErrUnsupportedDimension indicates a Complex of a dimension other than
	// 2 or 3, for which no CombinatorialMap implementation exists.
	ErrUnsupportedDimension = errors.New("topology: no combinatorial map for this dimension")

	// ErrEmptyCycle indicates a Cycle with no darts was passed where at
	// least one dart is required (e.g. to seed a face-connectivity query).
	ErrEmptyCycle = errors.New("topology: cycle has no darts")
)
