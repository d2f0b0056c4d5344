package motion

import "math"

// RunAndTumble is Billiard with a chance, each tick, that a point abandons
// its current heading for a new random one before moving — a one in five
// chance per point, matching the original reorientation rate.
type RunAndTumble struct {
	*Billiard
}

func NewRunAndTumble(b *Billiard) *RunAndTumble {
	return &RunAndTumble{Billiard: b}
}

func (m *RunAndTumble) Step(points [][]float64) ([][]float64, error) {
	for i := range m.Angles {
		if m.Rand.Intn(5) == 4 {
			m.Angles[i] = m.Rand.Float64() * 2 * math.Pi
		}
	}

	return m.Billiard.Step(points)
}
