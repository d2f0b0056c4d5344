package labelling

import "errors"

// Sentinel errors for the labelling package.
var (
	// ErrNotAtomic is returned by Update when given a labelupdate.LabelUpdate
	// whose IsAtomic() is false (a labelupdate.NonAtomic, or any future
	// variant that reports it cannot be applied directly).
	ErrNotAtomic = errors.New("labelling: update is not atomic")
)
