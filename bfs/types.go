// Package bfs provides breadth-first search over a core.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// BFSResult holds the outcome of a BFS traversal: Depth maps each reached
// vertex ID to its distance, in edges, from the start vertex.
type BFSResult struct {
	Depth map[string]int
}
