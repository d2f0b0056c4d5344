package cmap

import "sort"

// Cycle is a φ-orbit: a frozen set of darts, closed under φ. Two cycles
// produced by the same map are either identical or dart-disjoint
// (spec.md §3's BoundaryCycle invariant).
type Cycle struct {
	darts map[string]Dart
	key   string
}

// newCycle freezes an orbit (a slice of darts visited in φ-trace order)
// into a Cycle and precomputes its canonical key: the sorted dart keys
// joined, so two Cycle values with the same dart set always compare equal.
func newCycle(orbit []Dart) *Cycle {
	darts := make(map[string]Dart, len(orbit))
	keys := make([]string, 0, len(orbit))
	for _, d := range orbit {
		k := d.Key()
		if _, ok := darts[k]; ok {
			continue
		}
		darts[k] = d
		keys = append(keys, k)
	}
	sort.Strings(keys)

	joined := ""
	for i, k := range keys {
		if i > 0 {
			joined += "|"
		}
		joined += k
	}

	return &Cycle{darts: darts, key: joined}
}

// Key is the cycle's identity witness, stable across repeated construction
// from the same dart set.
func (c *Cycle) Key() string {
	return c.key
}

// Contains reports whether dart d is a member of this cycle.
func (c *Cycle) Contains(d Dart) bool {
	_, ok := c.darts[d.Key()]

	return ok
}

// Darts returns the cycle's darts in unspecified order.
func (c *Cycle) Darts() []Dart {
	out := make([]Dart, 0, len(c.darts))
	for _, d := range c.darts {
		out = append(out, d)
	}

	return out
}

// Nodes returns the union of vertex indices appearing in the cycle's darts.
func (c *Cycle) Nodes() []int {
	seen := make(map[int]struct{})
	for _, d := range c.darts {
		for _, n := range d.Nodes() {
			seen[n] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)

	return out
}

// Len returns the number of darts in the cycle.
func (c *Cycle) Len() int {
	return len(c.darts)
}
