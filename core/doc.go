// Package core provides a thread-safe, in-memory undirected graph: vertices
// identified by string keys, edges with constant-time membership testing via
// nested adjacency maps (adjacencyList[from][to][edgeID] = struct{}{}), and
// monotonic textual edge-ID generation ("e1", "e2", ...).
//
// Core Methods:
//
//	AddVertex(id string) error          // O(1), idempotent
//	HasVertex(id string) bool           // O(1)
//	Vertices() []string                 // O(V log V), sorted ascending
//
//	AddEdge(from, to string) (edgeID string, err error) // O(1) amortized
//	HasEdge(from, to string) bool                        // O(1)
//
//	NeighborIDs(id string) ([]string, error) // O(deg log deg), unique, sorted
//
// Concurrency: a separate sync.RWMutex guards vertices (muVert) from edges
// and adjacency (muEdgeAdj), so reads and writes on disjoint parts of the
// graph don't contend with each other.
//
// Errors:
//
//	ErrEmptyVertexID  - zero-length vertex ID
//	ErrVertexNotFound - missing vertex
//
// In this module, core.Graph is the 1-skeleton substrate described in
// topology.connectedToFence: vertices are 0-simplex keys, edges are the
// complex's current 1-simplices, and reachability from the fence vertex is
// answered by bfs.BFS over this graph.
package core
