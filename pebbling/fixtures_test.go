package pebbling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathFixture(t *testing.T) {
	g := Path(4)
	require.Len(t, g.Vertices(), 4)
	require.Equal(t, []string{"v1"}, g.Children("v0"))
	require.Empty(t, g.Children("v3"))
	require.True(t, g.IsAcyclic())
}

func TestGridFixture(t *testing.T) {
	g := Grid(2, 3)
	require.Len(t, g.Vertices(), 6)
	require.True(t, g.IsAcyclic())
	// Corner (0,0) has a right neighbor and a down neighbor.
	require.ElementsMatch(t, []string{"r0c1", "r1c0"}, g.Children("r0c0"))
	// Bottom-right corner has no outgoing edges.
	require.Empty(t, g.Children("r1c2"))
}

func TestRandomSparseFixtureDeterministic(t *testing.T) {
	g1 := RandomSparse(10, 0.3, 42)
	g2 := RandomSparse(10, 0.3, 42)
	require.Equal(t, g1.Edges(), g2.Edges())
	require.True(t, g1.IsAcyclic())
}

func TestCompleteFixture(t *testing.T) {
	g := Complete(4)
	require.True(t, g.IsAcyclic())
	// v0 has edges to v1, v2, v3.
	require.Len(t, g.Children("v0"), 3)
	require.Empty(t, g.Children("v3"))
}

func TestFixturePanicsOnInvalidSize(t *testing.T) {
	require.Panics(t, func() { Path(0) })
	require.Panics(t, func() { Grid(0, 1) })
	require.Panics(t, func() { Complete(0) })
	require.Panics(t, func() { RandomSparse(1, 1.5, 1) })
}
