package alphacomplex

import "errors"

// Sentinel errors for the alphacomplex package.
var (
	// ErrTooFewPoints indicates fewer than one point was supplied to Build.
	ErrTooFewPoints = errors.New("alphacomplex: at least one point required")

	// ErrDimensionMismatch indicates the supplied points do not all share
	// the same coordinate dimension (2 or 3).
	ErrDimensionMismatch = errors.New("alphacomplex: inconsistent point dimension")

	// ErrUnsupportedDimension indicates a point dimension other than 2 or 3.
	ErrUnsupportedDimension = errors.New("alphacomplex: only 2D and 3D points are supported")

	// ErrKernelFailure wraps an error surfaced by the underlying Kernel
	// (spec.md §7.5 KernelFailure: "propagated with context").
	ErrKernelFailure = errors.New("alphacomplex: kernel failure")

	// ErrNegativeRadius indicates a non-positive sensing radius.
	ErrNegativeRadius = errors.New("alphacomplex: sensing radius must be positive")
)
