package bfs_test

import (
	"testing"

	"github.com/islandforge/islandmap/bfs"
	"github.com/islandforge/islandmap/core"
	"github.com/stretchr/testify/require"
)

func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "d", 1)
	require.NoError(t, err)

	return g
}

func TestBFSSingleSource(t *testing.T) {
	g := chain(t)
	res, err := bfs.BFS(g, "a")
	require.NoError(t, err)
	require.Equal(t, 0, res.Distance["a"])
	require.Equal(t, 3, res.Distance["d"])
	require.Equal(t, "c", res.Parent["d"])
}

func TestMultiSourceTakesNearest(t *testing.T) {
	g := chain(t)
	res, err := bfs.MultiSource(g, []string{"a", "d"})
	require.NoError(t, err)
	require.Equal(t, 0, res.Distance["a"])
	require.Equal(t, 0, res.Distance["d"])
	require.Equal(t, 1, res.Distance["b"])
	require.Equal(t, 1, res.Distance["c"])
}

func TestBFSRejectsMissingStart(t *testing.T) {
	g := chain(t)
	_, err := bfs.BFS(g, "z")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}

func TestBFSRejectsNilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, "a")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
