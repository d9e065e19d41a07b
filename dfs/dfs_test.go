package dfs_test

import (
	"testing"

	"github.com/islandforge/islandmap/core"
	"github.com/islandforge/islandmap/dfs"
	"github.com/stretchr/testify/require"
)

func TestDetectCycleOnAcyclicChain(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 0)
	require.NoError(t, err)

	require.NoError(t, dfs.DetectCycle(g))
}

func TestDetectCycleFindsCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a", 0)
	require.NoError(t, err)

	require.ErrorIs(t, dfs.DetectCycle(g), dfs.ErrCycleDetected)
}

func TestDetectCycleRejectsNilGraph(t *testing.T) {
	require.ErrorIs(t, dfs.DetectCycle(nil), dfs.ErrGraphNil)
}
