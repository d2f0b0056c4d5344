package cmap

import (
	"github.com/sentrymesh/evasion/rotation"
)

// Map2D is the combinatorial map over 2D darts (oriented edges), built
// from a rotation.Info2D. Boundary cycles are traced eagerly at
// construction, mirroring the teacher's build-once, query-many style.
type Map2D struct {
	info   *rotation.Info2D
	cycles []*Cycle
	byDart map[string]*Cycle
}

// NewMap2D builds the combinatorial map and enumerates all boundary
// cycles by exhausting darts: pick any unmarked dart, trace its φ-orbit,
// mark all, emit one cycle, repeat (spec.md §4.3).
func NewMap2D(info *rotation.Info2D) *Map2D {
	m := &Map2D{info: info, byDart: make(map[string]*Cycle)}

	unmarked := make(map[string]rotation.Dart)
	for _, d := range info.AllDarts() {
		unmarked[d.Key()] = d
	}

	for len(unmarked) > 0 {
		var start rotation.Dart
		for _, d := range unmarked {
			start = d

			break
		}

		orbit := []Dart{start}
		delete(unmarked, start.Key())
		current := start
		for {
			next, err := m.phi2D(current)
			if err != nil || next == start {
				break
			}
			orbit = append(orbit, next)
			delete(unmarked, next.Key())
			current = next
		}

		cycle := newCycle(orbit)
		m.cycles = append(m.cycles, cycle)
		for _, d := range orbit {
			m.byDart[d.Key()] = cycle
		}
	}

	return m
}

func (m *Map2D) phi2D(d rotation.Dart) (rotation.Dart, error) {
	reversed := rotation.Dart{d[1], d[0]}

	return m.info.Next(reversed)
}

// Alpha reverses a dart's orientation: (u,v) -> (v,u).
func (m *Map2D) Alpha(d Dart) Dart {
	rd := d.(rotation.Dart)

	return rotation.Dart{rd[1], rd[0]}
}

// Sigma returns the next dart around the shared vertex, per RotationInfo.
func (m *Map2D) Sigma(d Dart) (Dart, error) {
	rd, ok := d.(rotation.Dart)
	if !ok {
		return nil, ErrUnsupportedDartType
	}
	next, err := m.info.Next(rd)
	if err != nil {
		return nil, err
	}

	return next, nil
}

// Phi returns σ(α(d)): the cycle operator.
func (m *Map2D) Phi(d Dart) (Dart, error) {
	return m.Sigma(m.Alpha(d))
}

// BoundaryCycles returns all φ-orbits computed at construction time.
func (m *Map2D) BoundaryCycles() []*Cycle {
	return m.cycles
}

// GetCycle returns the φ-orbit containing dart d.
func (m *Map2D) GetCycle(d Dart) (*Cycle, error) {
	c, ok := m.byDart[d.Key()]
	if !ok {
		return nil, ErrDartNotFound
	}

	return c, nil
}
