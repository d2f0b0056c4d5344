package labelupdate

import "errors"

// Sentinel errors for the labelupdate package.
var (
	// ErrMissingLabel indicates a LabelUpdate needed the current label of a
	// cycle that is absent from the Lookup it was given — a labelling has
	// gone out of sync with the topology it was built from.
	ErrMissingLabel = errors.New("labelupdate: cycle has no current label")

	// ErrInvalidTransition indicates a case tuple matched one of the
	// catalogue's shapes by count but failed its sub-simplex consistency
	// check (e.g. the added edge is not a face of the added 2-simplex).
	ErrInvalidTransition = errors.New("labelupdate: transition failed its sub-simplex consistency check")
)
