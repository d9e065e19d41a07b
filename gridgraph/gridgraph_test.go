package gridgraph_test

import (
	"testing"

	"github.com/islandforge/islandmap/gridgraph"
	"github.com/stretchr/testify/require"
)

func TestComponentsSeparatesDiagonalIslandsUnderConn4(t *testing.T) {
	land := [][]bool{
		{true, false},
		{false, true},
	}
	g, err := gridgraph.New(land)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)
}

func TestComponentsMergesDiagonalIslandsUnderConn8(t *testing.T) {
	land := [][]bool{
		{true, false},
		{false, true},
	}
	g, err := gridgraph.New(land, gridgraph.WithConn8())
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 2)
}

func TestComponentsIgnoresWater(t *testing.T) {
	land := [][]bool{
		{false, false},
		{false, false},
	}
	g, err := gridgraph.New(land)
	require.NoError(t, err)

	require.Empty(t, g.Components())
}

func TestNewRejectsEmptyGrid(t *testing.T) {
	_, err := gridgraph.New(nil)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestNewRejectsNonRectangular(t *testing.T) {
	_, err := gridgraph.New([][]bool{{true}, {true, false}})
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}
