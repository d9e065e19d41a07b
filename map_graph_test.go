package islandmap_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/islandforge/islandmap"
	"github.com/islandforge/islandmap/prim_kruskal"
	"github.com/stretchr/testify/require"
)

// radialOracle carves a round island out of the map: high noise near the
// recentered origin, decaying outward, so the generated mesh has both land
// and ocean (and therefore coast) instead of being uniformly one or the
// other.
type radialOracle struct{}

func (radialOracle) Noise3D(x, y, z float64) float64 {
	return 0.5 - 0.5*math.Sqrt(x*x+y*y)
}

func newIslandMap(t *testing.T) *islandmap.Map {
	t.Helper()
	cfg := islandmap.Config{Width: 160, Height: 160, PointSpread: 20, Seed: "lagoon"}
	m, err := islandmap.New(cfg, islandmap.WithNoise(radialOracle{}), islandmap.WithHexSize(10))
	require.NoError(t, err)
	m.Generate()

	return m
}

func TestLandGraphOnlyContainsNonWaterCenters(t *testing.T) {
	m := newIslandMap(t)

	g, err := m.LandGraph()
	require.NoError(t, err)

	centers, err := m.Centers()
	require.NoError(t, err)

	landCount := 0
	for _, c := range centers {
		if !c.Water {
			landCount++
		}
	}

	require.Equal(t, landCount, g.VertexCount())
	require.Greater(t, landCount, 0)
	require.Less(t, landCount, len(centers))
}

func TestDistanceToCoastIsZeroOnCoastCenters(t *testing.T) {
	m := newIslandMap(t)

	dist, err := m.DistanceToCoast()
	require.NoError(t, err)
	require.NotEmpty(t, dist)

	centers, err := m.Centers()
	require.NoError(t, err)

	for idx, d := range dist {
		if centers[idx].Coast {
			require.Equal(t, 0, d)
		}
	}
}

func TestVerifyRiverAcyclicPasses(t *testing.T) {
	m := newIslandMap(t)
	require.NoError(t, m.VerifyRiverAcyclic())
}

func TestRouteBetweenTwoLandCenters(t *testing.T) {
	m := newIslandMap(t)

	g, err := m.LandGraph()
	require.NoError(t, err)

	vertices := g.Vertices()
	require.GreaterOrEqual(t, len(vertices), 2, "need at least two land centers")

	var a, b int
	found := false
	for _, v := range vertices {
		neighbors, err := g.NeighborIDs(v)
		require.NoError(t, err)
		if len(neighbors) > 0 {
			_, err := fmt.Sscanf(v, "%d", &a)
			require.NoError(t, err)
			_, err = fmt.Sscanf(neighbors[0], "%d", &b)
			require.NoError(t, err)
			found = true
			break
		}
	}
	require.True(t, found, "need two directly-adjacent land centers")

	path, cost, err := m.RouteBetween(a, b)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	require.Equal(t, a, path[0])
	require.Equal(t, b, path[len(path)-1])
	require.GreaterOrEqual(t, cost, int64(0))
}

func TestRasterComponentsSeparatesLandFromWater(t *testing.T) {
	m := newIslandMap(t)

	comps, err := m.RasterComponents(20)
	require.NoError(t, err)
	require.NotEmpty(t, comps)
}

func TestRasterComponentsRejectsNonPositiveCell(t *testing.T) {
	m := newIslandMap(t)
	_, err := m.RasterComponents(0)
	require.ErrorIs(t, err, islandmap.ErrInvalidDimensions)
}

func TestRoadNetworkConnectsAllLandCenters(t *testing.T) {
	m := newIslandMap(t)

	edges, weight, err := m.RoadNetwork()
	if err != nil {
		require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
		return
	}

	centers, err := m.Centers()
	require.NoError(t, err)

	landCount := 0
	for _, c := range centers {
		if !c.Water {
			landCount++
		}
	}

	if landCount > 1 {
		require.NotEmpty(t, edges)
		require.Greater(t, weight, int64(0))
	}
}

func TestRiverDischargeCapacityNonNegative(t *testing.T) {
	m := newIslandMap(t)

	corners, err := m.Corners()
	require.NoError(t, err)

	var source int
	for i, c := range corners {
		if c.RiverVolume > 0 {
			source = i
			break
		}
	}

	cap, err := m.RiverDischargeCapacity(source)
	require.NoError(t, err)
	require.GreaterOrEqual(t, cap, 0.0)
}

func TestAdjacencyMatrixMatchesLandGraph(t *testing.T) {
	m := newIslandMap(t)

	mat, order, err := m.AdjacencyMatrix()
	require.NoError(t, err)
	require.Equal(t, len(order), mat.Rows())
	require.Equal(t, len(order), mat.Cols())
}

func TestAllPairsLandDistancesIsSymmetric(t *testing.T) {
	m := newIslandMap(t)

	mat, order, err := m.AllPairsLandDistances()
	require.NoError(t, err)
	if len(order) < 2 {
		t.Skip("not enough land centers for a meaningful distance check")
	}

	d01, err := mat.At(0, 1)
	require.NoError(t, err)
	d10, err := mat.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, d01, d10)
}

func TestCoastalPatrolRouteVisitsEveryCoastCenter(t *testing.T) {
	m := newIslandMap(t)

	centers, err := m.Centers()
	require.NoError(t, err)

	var wantCoast int
	for _, c := range centers {
		if !c.Water && c.Coast {
			wantCoast++
		}
	}

	route, _, err := m.CoastalPatrolRoute()
	require.NoError(t, err)
	require.Len(t, route, wantCoast)
}
