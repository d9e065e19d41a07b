package mapseed_test

import (
	"testing"

	"github.com/islandforge/islandmap/mapseed"
	"github.com/stretchr/testify/require"
)

func TestHashIsDeterministic(t *testing.T) {
	require.Equal(t, mapseed.Hash("test"), mapseed.Hash("test"))
	require.NotEqual(t, mapseed.Hash("test"), mapseed.Hash("Test"))
}

func TestHashMatchesFormula(t *testing.T) {
	// hash("A") = 'A' * 2^0 = 65
	require.Equal(t, uint32(65), mapseed.Hash("A"))
	// hash("AB") = 'A'*2^0 + 'B'*2^1 = 65 + 132 = 197
	require.Equal(t, uint32(197), mapseed.Hash("AB"))
}

func TestNewWithExplicitSeedIsReproducible(t *testing.T) {
	s1 := mapseed.New("test")
	s2 := mapseed.New("test")

	require.Equal(t, "test", s1.Str)
	require.Equal(t, s1.Z, s2.Z)
	require.Equal(t, s1.Float64(), s2.Float64())
}

func TestNewWithEmptySeedGeneratesOne(t *testing.T) {
	s := mapseed.New("")
	require.Len(t, s.Str, 20)
}
