package rotation

import "errors"

// Sentinel errors for the rotation package.
var (
	// ErrUnknownVertex indicates Next or a lookup was asked about a vertex
	// that has no incident edges in the underlying skeleton.
	ErrUnknownVertex = errors.New("rotation: unknown vertex")

	// ErrUnknownDart indicates a dart was not produced by AllDarts for this
	// RotationInfo.
	ErrUnknownDart = errors.New("rotation: unknown dart")

	// ErrUnknownHalfEdge indicates a half-edge has no incident oriented
	// triangles recorded (it does not bound any 2-simplex in range).
	ErrUnknownHalfEdge = errors.New("rotation: half-edge has no incident triangles")

	// ErrDegenerateHalfEdge indicates the half-edge direction used as a
	// dihedral rotation axis has (near) zero length.
	ErrDegenerateHalfEdge = errors.New("rotation: degenerate half-edge, cannot sort dihedral angles")
)
