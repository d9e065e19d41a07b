package prim_kruskal_test

import (
	"testing"

	"github.com/islandforge/islandmap/core"
	"github.com/islandforge/islandmap/prim_kruskal"
	"github.com/stretchr/testify/require"
)

func TestKruskalPicksCheapestSpanningEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "c", 9)
	require.NoError(t, err)

	tree, weight, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	require.EqualValues(t, 3, weight)
}

func TestKruskalRejectsUnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, _, err := prim_kruskal.Kruskal(g)
	require.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestKruskalRejectsDirectedGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _, err := prim_kruskal.Kruskal(g)
	require.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

func TestKruskalDetectsDisconnectedGraph(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("z"))

	_, _, err = prim_kruskal.Kruskal(g)
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}
