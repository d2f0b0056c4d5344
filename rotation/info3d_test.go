package rotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentrymesh/evasion/rotation"
	"github.com/sentrymesh/evasion/simplex"
)

// Three triangles share the half-edge (0,1) along the z axis, with apexes
// at 0°, 90°, and 180° around it.
func bookPoints() [][]float64 {
	return [][]float64{
		{0, 0, 0}, // 0: u
		{0, 0, 1}, // 1: v
		{1, 0, 0}, // 2: apex at 0 deg
		{0, 1, 0}, // 3: apex at 90 deg
		{-1, 0, 0}, // 4: apex at 180 deg
	}
}

func TestInfo3D_NextOrdersByDihedralAngle(t *testing.T) {
	points := bookPoints()
	triangles := []simplex.Simplex{
		simplex.NewSimplex([]int{0, 1, 2}),
		simplex.NewSimplex([]int{0, 1, 3}),
		simplex.NewSimplex([]int{0, 1, 4}),
	}
	info, err := rotation.NewInfo3D(points, triangles)
	require.NoError(t, err)

	h := rotation.HalfEdge{0, 1}
	d0 := simplex.NewOrientedSimplex([]int{0, 1, 2})
	d90 := simplex.NewOrientedSimplex([]int{0, 1, 3})
	d180 := simplex.NewOrientedSimplex([]int{0, 1, 4})

	next, err := info.Next(h, d0)
	require.NoError(t, err)
	assert.True(t, next.Equal(d90))

	next, err = info.Next(h, d90)
	require.NoError(t, err)
	assert.True(t, next.Equal(d180))

	next, err = info.Next(h, d180)
	require.NoError(t, err)
	assert.True(t, next.Equal(d0), "dihedral order must wrap back to the reference apex")
}

func TestInfo3D_UnknownHalfEdgeAndDart(t *testing.T) {
	points := bookPoints()
	triangles := []simplex.Simplex{simplex.NewSimplex([]int{0, 1, 2})}
	info, err := rotation.NewInfo3D(points, triangles)
	require.NoError(t, err)

	_, err = info.Next(rotation.HalfEdge{9, 9}, simplex.NewOrientedSimplex([]int{0, 1, 2}))
	assert.ErrorIs(t, err, rotation.ErrUnknownHalfEdge)

	_, err = info.Next(rotation.HalfEdge{0, 1}, simplex.NewOrientedSimplex([]int{0, 1, 99}))
	assert.ErrorIs(t, err, rotation.ErrUnknownDart)
}

func TestInfo3D_DegenerateHalfEdgeRejected(t *testing.T) {
	points := [][]float64{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}}
	triangles := []simplex.Simplex{simplex.NewSimplex([]int{0, 1, 2})}
	_, err := rotation.NewInfo3D(points, triangles)
	assert.ErrorIs(t, err, rotation.ErrDegenerateHalfEdge)
}

func TestInfo3D_AllDartsSixPerTriangle(t *testing.T) {
	points := bookPoints()
	triangles := []simplex.Simplex{simplex.NewSimplex([]int{0, 1, 2})}
	info, err := rotation.NewInfo3D(points, triangles)
	require.NoError(t, err)

	assert.Len(t, info.AllDarts(), 6)
}
