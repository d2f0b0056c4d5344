package motion

// Stationary leaves every interior point exactly where it is. It grounds
// the baseline case update_points reduces to when a model's update_point is
// the identity, useful for isolating topology-layer behavior from motion
// noise in tests and for "frozen sensor" scenarios.
type Stationary struct{}

func (Stationary) Step(points [][]float64) ([][]float64, error) {
	out := make([][]float64, len(points))
	for i, p := range points {
		cp := make([]float64, len(p))
		copy(cp, p)
		out[i] = cp
	}

	return out, nil
}
