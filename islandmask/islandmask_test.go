package islandmask_test

import (
	"testing"

	"github.com/islandforge/islandmap/islandmask"
	"github.com/islandforge/islandmap/vec2"
	"github.com/stretchr/testify/require"
)

type constOracle float64

func (c constOracle) Noise3D(x, y, z float64) float64 { return float64(c) }

func TestIsLandRejectsMarginPoints(t *testing.T) {
	require.False(t, islandmask.IsLand(constOracle(1), vec2.New(0, 0), 200, 200, 0))
	require.False(t, islandmask.IsLand(constOracle(1), vec2.New(199.9, 199.9), 200, 200, 0))
}

func TestIsLandCenterIsLandWithHighNoise(t *testing.T) {
	require.True(t, islandmask.IsLand(constOracle(1), vec2.New(100, 100), 200, 200, 0))
}

func TestIsLandCenterIsWaterWithLowNoise(t *testing.T) {
	require.False(t, islandmask.IsLand(constOracle(-1), vec2.New(100, 100), 200, 200, 0))
}

func TestPerlinOracleDeterministic(t *testing.T) {
	o1 := islandmask.NewPerlinOracle(42)
	o2 := islandmask.NewPerlinOracle(42)
	require.Equal(t, o1.Noise3D(1, 2, 3), o2.Noise3D(1, 2, 3))
}
