package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentrymesh/evasion/domain"
)

func unitRectangle() domain.Rectangle {
	return domain.Rectangle{XMin: 0, XMax: 1, YMin: 0, YMax: 1, Spacing: 0.2}
}

func TestRectangle_Contains(t *testing.T) {
	r := unitRectangle()

	inside, err := r.Contains([]float64{0.5, 0.5})
	require.NoError(t, err)
	assert.True(t, inside)

	outside, err := r.Contains([]float64{1.5, 0.5})
	require.NoError(t, err)
	assert.False(t, outside)

	_, err = r.Contains([]float64{0.5})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestRectangle_ReflectOffRightWallFlipsXAndMirrorsPosition(t *testing.T) {
	r := unitRectangle()

	oldPos := []float64{0.95, 0.5}
	newPos := []float64{1.05, 0.5}
	vel := []float64{0.1, 0.0}

	reflPos, reflVel, err := r.Reflect(newPos, vel)
	require.NoError(t, err)

	assert.InDelta(t, 0.95, reflPos[0], 1e-9)
	assert.InDelta(t, 0.5, reflPos[1], 1e-9)
	assert.InDelta(t, -0.1, reflVel[0], 1e-9)
	assert.InDelta(t, 0.0, reflVel[1], 1e-9)
	_ = oldPos
}

func TestRectangle_ReflectOffBottomWallFlipsYOnly(t *testing.T) {
	r := unitRectangle()

	newPos := []float64{0.5, -0.05}
	vel := []float64{0.1, -0.2}

	reflPos, reflVel, err := r.Reflect(newPos, vel)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, reflPos[0], 1e-9)
	assert.InDelta(t, 0.05, reflPos[1], 1e-9)
	assert.InDelta(t, 0.1, reflVel[0], 1e-9)
	assert.InDelta(t, 0.2, reflVel[1], 1e-9)
}

func TestRectangle_ReflectRejectsWrongDimension(t *testing.T) {
	r := unitRectangle()
	_, _, err := r.Reflect([]float64{1}, []float64{1, 1})
	assert.ErrorIs(t, err, domain.ErrDimensionMismatch)
}

func TestRectangle_FenceLiesOutsideNominalRectangleAndIsOrdered(t *testing.T) {
	r := unitRectangle()
	fence := r.Fence()
	require.NotEmpty(t, fence)

	for _, p := range fence {
		inside, err := r.Contains(p)
		require.NoError(t, err)
		assert.False(t, inside, "fence point %v should sit outside the nominal rectangle", p)
	}

	first := fence[0]
	assert.InDelta(t, -r.Spacing*0.5, first[0], 0.3, "fence should start near the bottom-left corner")
	assert.InDelta(t, -r.Spacing*0.5, first[1], 0.3)
}
