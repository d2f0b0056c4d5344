package motion

import (
	"math"
	"math/rand"

	"github.com/sentrymesh/evasion/domain"
)

// RandomWalk moves each point by an independent Gaussian step per axis with
// standard deviation Sigma*sqrt(Dt), reflecting off Boundary when a step
// would leave the region. It carries no velocity state between ticks.
type RandomWalk struct {
	Dt       float64
	Sigma    float64
	Boundary domain.Boundary
	Rand     *rand.Rand
}

// NewRandomWalk constructs a RandomWalk with its own seeded source.
func NewRandomWalk(dt, sigma float64, boundary domain.Boundary, seed int64) *RandomWalk {
	return &RandomWalk{
		Dt:       dt,
		Sigma:    sigma,
		Boundary: boundary,
		Rand:     rand.New(rand.NewSource(seed)),
	}
}

func (m *RandomWalk) epsilon() float64 {
	return m.Sigma * math.Sqrt(m.Dt) * m.Rand.NormFloat64()
}

func (m *RandomWalk) Step(points [][]float64) ([][]float64, error) {
	out := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, ErrDimensionMismatch{Want: 2, Got: len(p)}
		}

		step := []float64{m.epsilon(), m.epsilon()}
		next := []float64{p[0] + step[0], p[1] + step[1]}

		inside, err := m.Boundary.Contains(next)
		if err != nil {
			return nil, err
		}
		if inside {
			out[i] = next
			continue
		}

		reflPos, _, err := m.Boundary.Reflect(next, step)
		if err != nil {
			return nil, err
		}
		out[i] = reflPos
	}

	return out, nil
}
