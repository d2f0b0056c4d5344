package motion

import (
	"math"
	"math/rand"

	"github.com/sentrymesh/evasion/domain"
)

// Billiard moves every point at a fixed speed Vel along its own angle,
// bouncing the angle off Boundary like light off a mirror. Every point
// keeps a persistent heading in Angles, indexed the same way as the points
// passed to Step.
type Billiard struct {
	Dt       float64
	Vel      float64
	Boundary domain.Boundary
	Angles   []float64
	Rand     *rand.Rand
}

// NewBilliard constructs a Billiard with n independently randomized
// headings in [0, 2*pi).
func NewBilliard(dt, vel float64, boundary domain.Boundary, n int, seed int64) *Billiard {
	r := rand.New(rand.NewSource(seed))
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = r.Float64() * 2 * math.Pi
	}

	return &Billiard{Dt: dt, Vel: vel, Boundary: boundary, Angles: angles, Rand: r}
}

func (m *Billiard) Step(points [][]float64) ([][]float64, error) {
	if len(points) != len(m.Angles) {
		return nil, ErrDimensionMismatch{Want: len(m.Angles), Got: len(points)}
	}

	out := make([][]float64, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, ErrDimensionMismatch{Want: 2, Got: len(p)}
		}

		theta := m.Angles[i]
		vel := []float64{m.Vel * math.Cos(theta), m.Vel * math.Sin(theta)}
		next := []float64{p[0] + m.Dt*vel[0], p[1] + m.Dt*vel[1]}

		inside, err := m.Boundary.Contains(next)
		if err != nil {
			return nil, err
		}
		if inside {
			out[i] = next
			continue
		}

		reflPos, reflVel, err := m.Boundary.Reflect(next, vel)
		if err != nil {
			return nil, err
		}
		m.Angles[i] = math.Atan2(reflVel[1], reflVel[0])
		out[i] = reflPos
	}

	return out, nil
}
