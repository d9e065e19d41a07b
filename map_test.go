package islandmap_test

import (
	"testing"

	"github.com/islandforge/islandmap"
	"github.com/islandforge/islandmap/vec2"
	"github.com/stretchr/testify/require"
)

type constOracle float64

func (o constOracle) Noise3D(x, y, z float64) float64 { return float64(o) }

func newLandMap(t *testing.T) *islandmap.Map {
	t.Helper()
	cfg := islandmap.Config{Width: 120, Height: 120, PointSpread: 20, Seed: "atoll"}
	m, err := islandmap.New(cfg, islandmap.WithNoise(constOracle(1)), islandmap.WithHexSize(10))
	require.NoError(t, err)
	m.Generate()

	return m
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	_, err := islandmap.New(islandmap.Config{Width: 0, Height: 10, PointSpread: 1})
	require.ErrorIs(t, err, islandmap.ErrInvalidDimensions)
}

func TestQueryBeforeGenerateFails(t *testing.T) {
	m, err := islandmap.New(islandmap.Config{Width: 60, Height: 60, PointSpread: 20, Seed: "x"})
	require.NoError(t, err)

	_, err = m.Centers()
	require.ErrorIs(t, err, islandmap.ErrNotGenerated)
}

func TestGeneratePopulatesCentersAndSpatialIndex(t *testing.T) {
	m := newLandMap(t)

	centers, err := m.Centers()
	require.NoError(t, err)
	require.NotEmpty(t, centers)

	idx, err := m.CenterAt(vec2.New(60, 60))
	require.NoError(t, err)
	require.GreaterOrEqual(t, idx, 0)
	require.Less(t, idx, len(centers))
}

func TestGenerateIsDeterministicForFixedSeed(t *testing.T) {
	cfg := islandmap.Config{Width: 100, Height: 100, PointSpread: 20, Seed: "reef"}

	m1, err := islandmap.New(cfg, islandmap.WithNoise(constOracle(1)), islandmap.WithHexSize(10))
	require.NoError(t, err)
	m1.Generate()

	m2, err := islandmap.New(cfg, islandmap.WithNoise(constOracle(1)), islandmap.WithHexSize(10))
	require.NoError(t, err)
	m2.Generate()

	c1, err := m1.Centers()
	require.NoError(t, err)
	c2, err := m2.Centers()
	require.NoError(t, err)

	require.Len(t, c2, len(c1))
	for i := range c1 {
		require.Equal(t, c1[i].Elevation, c2[i].Elevation)
		require.Equal(t, c1[i].Moisture, c2[i].Moisture)
		require.Equal(t, c1[i].Biome, c2[i].Biome)
	}
}
