package cmap

import (
	"github.com/sentrymesh/evasion/rotation"
	"github.com/sentrymesh/evasion/simplex"
)

// Map3D is the combinatorial map over 3D darts (oriented triangles), built
// from a rotation.Info3D.
type Map3D struct {
	info   *rotation.Info3D
	cycles []*Cycle
	byDart map[string]*Cycle
}

// NewMap3D builds the combinatorial map and enumerates all boundary
// cycles the same way Map2D does: exhaust darts via φ-orbit tracing.
func NewMap3D(info *rotation.Info3D) *Map3D {
	m := &Map3D{info: info, byDart: make(map[string]*Cycle)}

	unmarked := make(map[string]simplex.OrientedSimplex)
	for _, d := range info.AllDarts() {
		unmarked[d.Key()] = d
	}

	for len(unmarked) > 0 {
		var start simplex.OrientedSimplex
		for _, d := range unmarked {
			start = d

			break
		}

		orbit := []Dart{start}
		delete(unmarked, start.Key())
		current := start
		for {
			next, err := m.phi3D(current)
			if err != nil || next.Equal(start) {
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

func (m *Map3D) phi3D(d simplex.OrientedSimplex) (simplex.OrientedSimplex, error) {
	reversed := d.Reverse()
	n := reversed.Nodes()
	h := rotation.HalfEdge{n[0], n[1]}

	return m.info.Next(h, reversed)
}

// Alpha fixes the first vertex and swaps the other two (triangle
// reversal).
func (m *Map3D) Alpha(d Dart) Dart {
	od := d.(simplex.OrientedSimplex)

	return od.Reverse()
}

// Sigma dispatches to RotationInfo.next for the half-edge formed by d's
// own leading two vertices.
func (m *Map3D) Sigma(d Dart) (Dart, error) {
	od, ok := d.(simplex.OrientedSimplex)
	if !ok {
		return nil, ErrUnsupportedDartType
	}
	n := od.Nodes()
	h := rotation.HalfEdge{n[0], n[1]}
	next, err := m.info.Next(h, od)
	if err != nil {
		return nil, err
	}

	return next, nil
}

// Phi returns σ(α(d)).
func (m *Map3D) Phi(d Dart) (Dart, error) {
	return m.Sigma(m.Alpha(d))
}

// BoundaryCycles returns all φ-orbits computed at construction time.
func (m *Map3D) BoundaryCycles() []*Cycle {
	return m.cycles
}

// GetCycle returns the φ-orbit containing dart d.
func (m *Map3D) GetCycle(d Dart) (*Cycle, error) {
	c, ok := m.byDart[d.Key()]
	if !ok {
		return nil, ErrDartNotFound
	}

	return c, nil
}
