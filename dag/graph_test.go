package dag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildPath3(t *testing.T) *Graph {
	t.Helper()
	g := New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("c"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	return g
}

func TestAddVertexErrors(t *testing.T) {
	g := New()
	require.ErrorIs(t, g.AddVertex(""), ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("a"))
	require.ErrorIs(t, g.AddVertex("a"), ErrDuplicateVertex)
}

func TestAddEdgeErrors(t *testing.T) {
	g := New()
	require.NoError(t, g.AddVertex("a"))
	require.ErrorIs(t, g.AddEdge("a", "a"), ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge("a", "b"), ErrVertexNotFound)
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.ErrorIs(t, g.AddEdge("a", "b"), ErrDuplicateEdge)
}

func TestChildrenParentsSorted(t *testing.T) {
	g := buildPath3(t)
	require.Equal(t, []string{"b"}, g.Children("a"))
	require.Equal(t, []string{"a"}, g.Parents("b"))
	require.Empty(t, g.Children("c"))
}

func TestTopologicalOrderOnPath(t *testing.T) {
	g := buildPath3(t)
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, order)
	require.True(t, g.IsAcyclic())
}

func TestTopologicalOrderDetectsCycle(t *testing.T) {
	g := New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))

	_, err := g.TopologicalOrder()
	require.ErrorIs(t, err, ErrNotAcyclic)
	require.False(t, g.IsAcyclic())
}
