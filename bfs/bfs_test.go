package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentrymesh/evasion/bfs"
	"github.com/sentrymesh/evasion/core"
)

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_StartVertexNotFound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	_, err := bfs.BFS(g, "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFS_DepthAlongChain(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, res.Depth)
}

func TestBFS_UnreachableVertexAbsent(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("isolated"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	_, reached := res.Depth["isolated"]
	require.False(t, reached)
}

func TestBFS_UndirectedReachesBothWays(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)

	res, err := bfs.BFS(g, "B")
	require.NoError(t, err)
	require.Equal(t, 1, res.Depth["A"])
}

func TestBFS_SingleVertexNoEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))

	res, err := bfs.BFS(g, "solo")
	require.NoError(t, err)
	require.Equal(t, map[string]int{"solo": 0}, res.Depth)
}
