// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances from the start vertex.
package bfs

import (
	"fmt"

	"github.com/sentrymesh/evasion/core"
)

// BFS runs breadth-first search on g starting from startID and returns the
// distance, in edges, from startID to every vertex it can reach.
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	depth := map[string]int{startID: 0}
	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := depth[nbr]; seen {
				continue
			}
			depth[nbr] = depth[id] + 1
			queue = append(queue, nbr)
		}
	}

	return &BFSResult{Depth: depth}, nil
}
