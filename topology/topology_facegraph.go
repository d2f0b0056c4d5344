package topology

import (
	"github.com/sentrymesh/evasion/bfs"
	"github.com/sentrymesh/evasion/cmap"
	"github.com/sentrymesh/evasion/core"
	"github.com/sentrymesh/evasion/simplex"
)

// fenceVertexKey is the graph vertex id for point 0, which boundary.Fence
// layout always places first (spec.md §6). Every fence-connectivity query is
// a reachability check against this one vertex.
const fenceVertexKey = "0"

// connectedToFence builds the 1-skeleton graph of the current alpha complex
// (one vertex per 0-simplex, one edge per 1-simplex) and returns the set of
// vertex keys reachable from vertex 0. A point's presence in this set means
// a sensor could physically walk from it to the fence without ever leaving
// the part of the complex the alpha shape currently covers.
func (t *Topology) connectedToFence() (map[string]struct{}, error) {
	g := core.NewGraph()
	for _, v := range t.Simplices(0) {
		if err := g.AddVertex(v.Key()); err != nil {
			return nil, err
		}
	}
	for _, e := range t.Simplices(1) {
		nodes := e.Nodes()
		if len(nodes) != 2 {
			continue
		}
		a := simplex.NewSimplex([]int{nodes[0]}).Key()
		b := simplex.NewSimplex([]int{nodes[1]}).Key()
		if g.HasEdge(a, b) {
			continue
		}
		if _, err := g.AddEdge(a, b); err != nil {
			return nil, err
		}
	}

	if !g.HasVertex(fenceVertexKey) {
		return map[string]struct{}{}, nil
	}

	res, err := bfs.BFS(g, fenceVertexKey)
	if err != nil {
		return nil, err
	}

	reached := make(map[string]struct{}, len(res.Depth)+1)
	reached[fenceVertexKey] = struct{}{}
	for k := range res.Depth {
		reached[k] = struct{}{}
	}

	return reached, nil
}

// IsConnectedSimplex reports whether any vertex of s can reach the fence
// through the current 1-skeleton (spec.md §4.4 is_connected_simplex): a
// filled top-dimensional simplex that shares even one vertex with the fence
// component has been swept from the outside in.
func (t *Topology) IsConnectedSimplex(s simplex.Simplex) (bool, error) {
	reached, err := t.connectedToFence()
	if err != nil {
		return false, err
	}

	for _, n := range s.Nodes() {
		if _, ok := reached[simplex.NewSimplex([]int{n}).Key()]; ok {
			return true, nil
		}
	}

	return false, nil
}

// IsConnectedCycle reports whether any vertex touched by cycle can reach the
// fence through the current 1-skeleton (spec.md §4.4 is_connected_cycle).
// Node 0 is always a fence sensor by construction, so checking disjointness
// against its component is exactly the original's "is this cycle cut off
// from the outside" test.
func (t *Topology) IsConnectedCycle(cycle *cmap.Cycle) (bool, error) {
	nodes := cycle.Nodes()
	if len(nodes) == 0 {
		return false, ErrEmptyCycle
	}

	reached, err := t.connectedToFence()
	if err != nil {
		return false, err
	}

	for _, n := range nodes {
		if _, ok := reached[simplex.NewSimplex([]int{n}).Key()]; ok {
			return true, nil
		}
	}

	return false, nil
}
