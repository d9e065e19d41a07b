package tsp_test

import (
	"testing"

	"github.com/islandforge/islandmap/tsp"
	"github.com/stretchr/testify/require"
)

func square(t *testing.T) [][]float64 {
	t.Helper()
	// Unit square corners 0,1,2,3 in perimeter order; the optimal closed
	// tour has length 4.
	return [][]float64{
		{0, 1, 1.41421356, 1},
		{1, 0, 1, 1.41421356},
		{1.41421356, 1, 0, 1},
		{1, 1.41421356, 1, 0},
	}
}

func TestSolveFindsOptimalSquareTour(t *testing.T) {
	dist := square(t)
	tour, cost, err := tsp.Solve(dist)
	require.NoError(t, err)
	require.Len(t, tour, 4)
	require.InDelta(t, 4.0, cost, 1e-6)

	seen := make(map[int]bool)
	for _, v := range tour {
		seen[v] = true
	}
	require.Len(t, seen, 4)
}

func TestSolveRejectsNonSquare(t *testing.T) {
	_, _, err := tsp.Solve([][]float64{{0, 1}, {1, 0, 2}})
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}

func TestSolveRejectsTooSmall(t *testing.T) {
	_, _, err := tsp.Solve([][]float64{{0}})
	require.ErrorIs(t, err, tsp.ErrTooSmall)
}

func TestSolveRejectsNegativeWeight(t *testing.T) {
	_, _, err := tsp.Solve([][]float64{{0, -1}, {-1, 0}})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}
