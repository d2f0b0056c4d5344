package topology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentrymesh/evasion/alphacomplex"
	"github.com/sentrymesh/evasion/cmap"
	"github.com/sentrymesh/evasion/rotation"
	"github.com/sentrymesh/evasion/topology"
)

func trianglePoints() [][]float64 {
	return [][]float64{{0, 0}, {1, 0}, {0, 1}}
}

func TestGenerateTopology_FilledTriangleHasNoHomologyGenerators(t *testing.T) {
	kernel := alphacomplex.NewFixtureKernel(map[int][][]int{
		1: {{0, 1}, {1, 2}, {2, 0}},
		2: {{0, 1, 2}},
	})
	top, err := topology.GenerateTopology(trianglePoints(), 1, kernel)
	require.NoError(t, err)
	assert.Equal(t, 2, top.Dim())

	alpha, err := top.AlphaCycle()
	require.NoError(t, err)
	assert.True(t, top.IsBoundary(alpha), "both faces of a filled triangle bound the same 2-simplex")
	assert.Empty(t, top.HomologyGenerators(), "a single filled triangle has no holes")
}

func squarePoints() [][]float64 {
	return [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestGenerateTopology_OpenSquareHasHomologyGenerators(t *testing.T) {
	kernel := alphacomplex.NewFixtureKernel(map[int][][]int{
		1: {{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	})
	top, err := topology.GenerateTopology(squarePoints(), 1, kernel)
	require.NoError(t, err)

	cycles := top.BoundaryCycles()
	require.Len(t, cycles, 1, "BoundaryCycles excludes the alpha cycle, leaving just the inner orbit")

	generators := top.HomologyGenerators()
	assert.Len(t, generators, 1, "the remaining unfilled inner face bounds no 2-simplex")
}

func twoDisjointTrianglesPoints() [][]float64 {
	return [][]float64{
		{0, 0}, {1, 0}, {0, 1},
		{10, 10}, {11, 10}, {10, 11},
	}
}

func TestIsConnectedCycle_DisjointTriangleIsNotReachable(t *testing.T) {
	kernel := alphacomplex.NewFixtureKernel(map[int][][]int{
		1: {{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}},
		2: {{0, 1, 2}, {3, 4, 5}},
	})
	top, err := topology.GenerateTopology(twoDisjointTrianglesPoints(), 1, kernel)
	require.NoError(t, err)

	alpha, err := top.AlphaCycle()
	require.NoError(t, err)
	connected, err := top.IsConnectedCycle(alpha)
	require.NoError(t, err)
	assert.True(t, connected, "the alpha cycle always reaches itself")

	var farCycle *cmap.Cycle
	for _, c := range top.BoundaryCycles() {
		if c.Contains(rotation.Dart{3, 4}) {
			farCycle = c
			break
		}
	}
	require.NotNil(t, farCycle, "expected a boundary cycle containing dart (3,4)")

	reachable, err := top.IsConnectedCycle(farCycle)
	require.NoError(t, err)
	assert.False(t, reachable, "the second triangle shares no facet with the alpha cycle's component")
}
