package cmap

import "errors"

// Sentinel errors for the cmap package.
var (
	// ErrDartNotFound indicates GetCycle or Sigma was called with a dart
	// that does not belong to this map's rotation system.
	ErrDartNotFound = errors.New("cmap: dart not found in this combinatorial map")

	// ErrUnsupportedDartType indicates a Dart value of the wrong concrete
	// type was passed to a Map2D or Map3D method (a rotation.Dart to Map3D,
	// or a simplex.OrientedSimplex to Map2D).
	ErrUnsupportedDartType = errors.New("cmap: dart type does not match this combinatorial map's dimension")
)
