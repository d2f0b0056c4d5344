// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances from a start vertex.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start
//     vertex.
//   - Returns a BFSResult whose Depth field maps every reached vertex to its
//     distance, in edges, from the start.
//
// Why
//
//   - Compute unweighted shortest-path distances in O(V + E) time.
//   - Discover which vertices are reachable from a given vertex at all.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(g, "start")
//	if err != nil {
//	    // ErrGraphNil or ErrStartVertexNotFound
//	}
//
// topology.IsConnectedCycle and topology.IsConnectedSimplex call BFS once per
// topology, from vertex 0, over the current 1-skeleton graph, and read only
// result.Depth: a vertex key's presence in that map is the reachability test.
package bfs
