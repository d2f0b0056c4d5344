package statechange

import "errors"

// Sentinel errors for the statechange package.
var (
	// ErrCycleNotAssociated indicates a simplex's node set matches no
	// boundary cycle in the given list.
	ErrCycleNotAssociated = errors.New("statechange: simplex is not associated with any boundary cycle")

	// ErrCycleAmbiguous indicates a simplex's node set matches more than
	// one boundary cycle in the given list (e.g. both faces of an
	// isolated filled simplex share the same vertex set).
	ErrCycleAmbiguous = errors.New("statechange: simplex cannot uniquely be represented as a boundary cycle")
)
