package alphacomplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentrymesh/evasion/alphacomplex"
)

func TestBuild_Validation(t *testing.T) {
	t.Run("empty points", func(t *testing.T) {
		_, err := alphacomplex.Build(nil, 1.0, &alphacomplex.BruteForceKernel{})
		assert.ErrorIs(t, err, alphacomplex.ErrTooFewPoints)
	})

	t.Run("non-positive radius", func(t *testing.T) {
		_, err := alphacomplex.Build([][]float64{{0, 0}}, 0, &alphacomplex.BruteForceKernel{})
		assert.ErrorIs(t, err, alphacomplex.ErrNegativeRadius)
	})

	t.Run("mismatched dimension", func(t *testing.T) {
		_, err := alphacomplex.Build([][]float64{{0, 0}, {0, 0, 0}}, 1.0, &alphacomplex.BruteForceKernel{})
		assert.ErrorIs(t, err, alphacomplex.ErrDimensionMismatch)
	})

	t.Run("unsupported dimension", func(t *testing.T) {
		_, err := alphacomplex.Build([][]float64{{0}}, 1.0, &alphacomplex.BruteForceKernel{})
		assert.ErrorIs(t, err, alphacomplex.ErrUnsupportedDimension)
	})
}

func TestBruteForceKernel_CechEdgesAndTriangle(t *testing.T) {
	// An equilateral-ish close triple and one far outlier.
	points := [][]float64{
		{0, 0},
		{0.2, 0},
		{0.1, 0.17},
		{10, 10},
	}
	c, err := alphacomplex.Build(points, 0.2, &alphacomplex.BruteForceKernel{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1, 2, 3}, c.Nodes())

	edges := c.Simplices(1)
	var sawCloseEdge bool
	for _, e := range edges {
		n := e.Nodes()
		assert.NotContains(t, n, 3, "far outlier must not appear in any edge")
		if len(n) == 2 {
			sawCloseEdge = true
		}
	}
	assert.True(t, sawCloseEdge, "close points must form at least one edge")

	triangles := c.Simplices(2)
	for _, tr := range triangles {
		assert.NotContains(t, tr.Nodes(), 3)
	}
}

func TestFixtureKernel_ReplaysExactSkeleton(t *testing.T) {
	kernel := alphacomplex.NewFixtureKernel(map[int][][]int{
		1: {{0, 1}, {1, 2}},
		2: {{0, 1, 2}},
	})
	c, err := alphacomplex.Build([][]float64{{0, 0}, {1, 0}, {0, 1}}, 1.0, kernel)
	require.NoError(t, err)

	assert.Len(t, c.Simplices(1), 2)
	assert.Len(t, c.Simplices(2), 1)
	assert.Empty(t, c.Simplices(3))
}
