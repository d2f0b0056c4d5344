package rotation

import (
	"math"
	"sort"
	"strconv"

	"github.com/sentrymesh/evasion/simplex"
)

// Dart is an oriented 1-simplex (half-edge) in the 2D rotation system: the
// pair (tail, head).
type Dart [2]int

// Key is the equality/hash witness used when a Dart is stored behind the
// cmap.Dart interface: the ordered pair, so (u,v) and (v,u) hash distinctly.
func (d Dart) Key() string {
	return strconv.Itoa(d[0]) + "-" + strconv.Itoa(d[1])
}

// Nodes returns the two endpoints in order, (tail, head).
func (d Dart) Nodes() []int {
	return []int{d[0], d[1]}
}

// Info2D holds, for each vertex, its incident neighbours sorted by angle
// around that vertex (spec.md §4.2, 2D case): circular adjacency computed
// once from point coordinates and the 1-skeleton, then queried by Next.
type Info2D struct {
	adj map[int][]int
}

// NewInfo2D builds the circular adjacency list for every vertex referenced
// by edges, sorting neighbours by atan2 of the direction from the vertex
// to the neighbour.
func NewInfo2D(points [][]float64, edges []simplex.Simplex) *Info2D {
	neighbors := make(map[int]map[int]struct{})
	touch := func(a, b int) {
		if neighbors[a] == nil {
			neighbors[a] = make(map[int]struct{})
		}
		neighbors[a][b] = struct{}{}
	}
	for _, e := range edges {
		n := e.Nodes()
		if len(n) != 2 {
			continue
		}
		touch(n[0], n[1])
		touch(n[1], n[0])
	}

	adj := make(map[int][]int, len(neighbors))
	for v, set := range neighbors {
		list := make([]int, 0, len(set))
		for w := range set {
			list = append(list, w)
		}
		origin := points[v]
		sort.Slice(list, func(i, j int) bool {
			return theta(points[list[i]], origin) < theta(points[list[j]], origin)
		})
		adj[v] = list
	}

	return &Info2D{adj: adj}
}

func theta(p, center []float64) float64 {
	return math.Atan2(p[1]-center[1], p[0]-center[0])
}

// Next returns the next dart counterclockwise (in increasing-angle order) around
// the shared vertex, per RotationInfo.next.
func (r *Info2D) Next(d Dart) (Dart, error) {
	list, ok := r.adj[d[0]]
	if !ok {
		return Dart{}, ErrUnknownVertex
	}
	idx := -1
	for i, w := range list {
		if w == d[1] {
			idx = i

			break
		}
	}
	if idx < 0 {
		return Dart{}, ErrUnknownDart
	}

	next := list[(idx+1)%len(list)]

	return Dart{d[0], next}, nil
}

// AllDarts returns both orientations of every 1-simplex: one dart per
// (vertex, neighbour) pair.
func (r *Info2D) AllDarts() []Dart {
	var out []Dart
	for v, list := range r.adj {
		for _, w := range list {
			out = append(out, Dart{v, w})
		}
	}

	return out
}
