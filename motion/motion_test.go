package motion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentrymesh/evasion/domain"
	"github.com/sentrymesh/evasion/motion"
)

func unitRectangle() domain.Rectangle {
	return domain.Rectangle{XMin: 0, XMax: 1, YMin: 0, YMax: 1, Spacing: 0.2}
}

func TestStationary_StepReturnsCopyUnchanged(t *testing.T) {
	in := [][]float64{{0.1, 0.2}, {0.3, 0.4}}
	out, err := motion.Stationary{}.Step(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out[0][0] = 99
	assert.NotEqual(t, in[0][0], out[0][0], "Step must not alias the input points")
}

func TestRandomWalk_StepStaysInsideBoundary(t *testing.T) {
	m := motion.NewRandomWalk(0.1, 0.5, unitRectangle(), 7)
	points := [][]float64{{0.02, 0.5}, {0.5, 0.98}, {0.5, 0.5}}

	for tick := 0; tick < 50; tick++ {
		next, err := m.Step(points)
		require.NoError(t, err)
		for _, p := range next {
			inside, err := unitRectangle().Contains(p)
			require.NoError(t, err)
			assert.True(t, inside || onBoundary(p), "point %v left the region", p)
		}
		points = next
	}
}

func onBoundary(p []float64) bool {
	const eps = 1e-9
	return p[0] <= eps || p[0] >= 1-eps || p[1] <= eps || p[1] >= 1-eps
}

func TestBilliard_StepAdvancesAtConstantSpeed(t *testing.T) {
	b := motion.NewBilliard(0.05, 1.0, unitRectangle(), 2, 3)
	b.Angles = []float64{0, 0}
	points := [][]float64{{0.1, 0.1}, {0.1, 0.2}}

	next, err := b.Step(points)
	require.NoError(t, err)

	assert.InDelta(t, 0.15, next[0][0], 1e-9)
	assert.InDelta(t, 0.1, next[0][1], 1e-9)
}

func TestBilliard_StepRejectsMismatchedPointCount(t *testing.T) {
	b := motion.NewBilliard(0.05, 1.0, unitRectangle(), 2, 3)
	_, err := b.Step([][]float64{{0.1, 0.1}})
	assert.Error(t, err)
}

func TestBilliard_ReflectsOffWallAndFlipsHeading(t *testing.T) {
	b := motion.NewBilliard(1.0, 1.0, unitRectangle(), 1, 1)
	b.Angles = []float64{0}

	next, err := b.Step([][]float64{{0.95, 0.5}})
	require.NoError(t, err)

	inside, err := unitRectangle().Contains(next[0])
	require.NoError(t, err)
	assert.True(t, inside)
	assert.NotEqual(t, float64(0), b.Angles[0], "heading should change after bouncing off the wall")
}

func TestRunAndTumble_StepProducesInBoundsPoints(t *testing.T) {
	base := motion.NewBilliard(0.05, 0.5, unitRectangle(), 3, 11)
	rt := motion.NewRunAndTumble(base)
	points := [][]float64{{0.5, 0.5}, {0.1, 0.9}, {0.9, 0.1}}

	for tick := 0; tick < 20; tick++ {
		next, err := rt.Step(points)
		require.NoError(t, err)
		points = next
	}
	for _, p := range points {
		inside, err := unitRectangle().Contains(p)
		require.NoError(t, err)
		assert.True(t, inside || onBoundary(p))
	}
}
