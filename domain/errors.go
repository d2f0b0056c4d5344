package domain

import "errors"

// ErrDimensionMismatch indicates a position or velocity vector's length
// does not match the Boundary's own dimension.
var ErrDimensionMismatch = errors.New("domain: vector dimension does not match boundary")
