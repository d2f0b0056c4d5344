// File: methods_adjacent.go
// Role: Neighborhood queries (NeighborIDs) and the adjacency bootstrap helper.
// Determinism:
//   - NeighborIDs returns unique IDs sorted lexicographically ascending.
package core

import "sort"

// NeighborIDs returns the unique, sorted vertex IDs adjacent to id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacencyList[id]))
	for to, edgeSet := range g.adjacencyList[id] {
		if len(edgeSet) == 0 {
			continue
		}
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency guarantees the nested maps for (from, to) exist. Must be
// called only under muEdgeAdj held for writing.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
