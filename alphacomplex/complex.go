// Package alphacomplex — complex.go: the Complex value exposed to callers.
package alphacomplex

import (
	"fmt"

	"github.com/sentrymesh/evasion/simplex"
)

// Complex is the immutable result of running a Kernel over a point list at
// a fixed sensing radius. Dim is the ambient point dimension (2 or 3).
//
// Operations:
//   - Simplices(dim): all d-simplices whose filtration value <= radius².
//   - Nodes: vertex indices present.
type Complex struct {
	kernel Kernel
	dim    int
	nodes  []int
}

// Build runs kernel over points, truncating at radius² (spec.md §4.1:
// "the filtration parameter is radius-squared"). All points must share the
// same coordinate dimension, either 2 or 3.
func Build(points [][]float64, radius float64, kernel Kernel) (*Complex, error) {
	if len(points) == 0 {
		return nil, ErrTooFewPoints
	}
	if radius <= 0 {
		return nil, ErrNegativeRadius
	}
	dim := len(points[0])
	if dim != 2 && dim != 3 {
		return nil, ErrUnsupportedDimension
	}
	for _, p := range points {
		if len(p) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	if err := kernel.Build(points, radius*radius); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKernelFailure, err)
	}

	nodes := make([]int, len(points))
	for i := range points {
		nodes[i] = i
	}

	return &Complex{kernel: kernel, dim: dim, nodes: nodes}, nil
}

// Dim returns the ambient dimension (2 or 3).
func (c *Complex) Dim() int {
	return c.dim
}

// Nodes returns the vertex indices present in the point list.
func (c *Complex) Nodes() []int {
	cp := make([]int, len(c.nodes))
	copy(cp, c.nodes)

	return cp
}

// Simplices returns every d-simplex whose filtration value is within the
// radius used to Build this Complex.
func (c *Complex) Simplices(d int) []simplex.Simplex {
	entries := c.kernel.Skeleton(d)
	out := make([]simplex.Simplex, 0, len(entries))
	for _, e := range entries {
		out = append(out, simplex.NewSimplex(e.Nodes))
	}

	return out
}

// SimplexSet returns Simplices(d) keyed by Simplex.Key(), convenient for
// set-difference computation in statechange.StateChange.
func (c *Complex) SimplexSet(d int) map[string]simplex.Simplex {
	list := c.Simplices(d)
	out := make(map[string]simplex.Simplex, len(list))
	for _, s := range list {
		out[s.Key()] = s
	}

	return out
}
