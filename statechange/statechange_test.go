package statechange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentrymesh/evasion/alphacomplex"
	"github.com/sentrymesh/evasion/statechange"
	"github.com/sentrymesh/evasion/topology"
)

// squarePoints is a square split by the diagonal 0-2 into two triangles,
// {0,1,2} and {0,2,3}. Keeping the diagonal edge present in both the
// filled and unfilled fixture means the two candidate faces' boundary
// cycles have distinct vertex sets from each other and from the outer
// fence — unlike a single bare triangle, where the inner and outer cycles
// both touch the same 3 vertices and a node-set lookup can't tell them
// apart.
func squarePoints() [][]float64 {
	return [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func buildTriangleTopology(t *testing.T, withFace bool) *topology.Topology {
	t.Helper()
	byDim := map[int][][]int{
		1: {{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}},
	}
	if withFace {
		byDim[2] = [][]int{{0, 1, 2}}
	}
	top, err := topology.GenerateTopology(squarePoints(), 1, alphacomplex.NewFixtureKernel(byDim))
	require.NoError(t, err)

	return top
}

func TestStateChange_NoOpCaseIsAllZero(t *testing.T) {
	top := buildTriangleTopology(t, true)
	sc := statechange.New(top, top)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, sc.Case())
}

func TestStateChange_AddFaceCaseMatchesCatalogue(t *testing.T) {
	oldTop := buildTriangleTopology(t, false)
	newTop := buildTriangleTopology(t, true)

	sc := statechange.New(newTop, oldTop)
	assert.Equal(t, []int{0, 0, 1, 0, 0, 0}, sc.Case(), "adding the 2-simplex alone is the Add-2-simplex case")

	valid, err := sc.IsValid()
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestStateChange_SimplexDiffAddedAndRemoved(t *testing.T) {
	oldTop := buildTriangleTopology(t, false)
	newTop := buildTriangleTopology(t, true)

	diff := statechange.New(newTop, oldTop).SimplexDiff(2)
	require.Len(t, diff.Added(), 1)
	assert.Empty(t, diff.Removed())
	assert.Equal(t, []int{0, 1, 2}, diff.Added()[0].Nodes())
}
