package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sentrymesh/evasion/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex("missing"))

	// Re-adding is a no-op, not an error.
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, []string{"A"}, g.Vertices())
}

func TestGraph_Vertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}

	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestGraph_AddEdge_CreatesMissingEndpoints(t *testing.T) {
	g := core.NewGraph()

	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.NotEmpty(t, eid)

	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A")) // undirected: mirrored both ways
}

func TestGraph_AddEdge_EmptyEndpoint(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_HasEdge_NoSuchEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	require.False(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("", "B"))
}

func TestGraph_NeighborIDs(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C")
	require.NoError(t, err)

	neighbors, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, neighbors)

	// Undirected: B and C each see A as a neighbor too.
	bNeighbors, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, bNeighbors)
}

func TestGraph_NeighborIDs_Errors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))

	_, err := g.NeighborIDs("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.NeighborIDs("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_NeighborIDs_IsolatedVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))

	neighbors, err := g.NeighborIDs("solo")
	require.NoError(t, err)
	require.Empty(t, neighbors)
}
