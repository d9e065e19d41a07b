package hexgrid_test

import (
	"testing"

	"github.com/islandforge/islandmap/hexgrid"
	"github.com/stretchr/testify/require"
)

func TestBuildProducesCentersWithSixCorners(t *testing.T) {
	m := hexgrid.Build(200, 200)
	require.NotEmpty(t, m.Centers)

	for _, c := range m.Centers {
		require.Len(t, c.Corners, 6)
		require.Len(t, c.Edges, 6)
	}
}

func TestBuildCornersHaveSingleIncidentCenter(t *testing.T) {
	m := hexgrid.Build(100, 100)
	for _, q := range m.Corners {
		require.Len(t, q.Centers, 1)
	}
}

func TestBuildEveryEdgeHasVoronoiEndpoints(t *testing.T) {
	m := hexgrid.Build(100, 100)
	for _, e := range m.Edges {
		require.NotEqual(t, e.V0, e.V1)
	}
}

func TestFinishTopologyAppliedSortsCornersCCW(t *testing.T) {
	m := hexgrid.Build(150, 150)
	for _, c := range m.Centers {
		for i := 0; i < len(c.Corners); i++ {
			a := m.Corners[c.Corners[i]].Position.Sub(c.Position)
			b := m.Corners[c.Corners[(i+1)%len(c.Corners)]].Position.Sub(c.Position)
			require.GreaterOrEqual(t, a.Cross(b), -1e-9)
		}
	}
}

func TestDescribeIncludesDimensions(t *testing.T) {
	require.Contains(t, hexgrid.Describe(200, 200, hexgrid.Size), "200x200")
}

func TestBuildWithSizeOverride(t *testing.T) {
	m := hexgrid.Build(200, 200)
	mSmall := hexgrid.BuildWithSize(200, 200, 5)
	require.Greater(t, len(mSmall.Centers), len(m.Centers))
}
