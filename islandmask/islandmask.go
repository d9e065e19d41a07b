// Package islandmask decides, for a recentered map point, whether it lies
// on land: a roughly circular island whose coastline is perturbed by 3D
// gradient noise.
package islandmask

import (
	"github.com/aquilax/go-perlin"
	"github.com/islandforge/islandmap/vec2"
)

// Oracle is a deterministic 3D gradient-noise source returning values in
// [-1,1]. A fixed (x,y,z) always yields the same value.
type Oracle interface {
	Noise3D(x, y, z float64) float64
}

// perlinAlpha/perlinBeta/perlinOctaves match the smooth, low-frequency
// coastline the island predicate expects; higher octave counts produce
// jaggier coasts than the formula's margins are tuned for.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// PerlinOracle is the canonical Oracle, backed by Perlin gradient noise.
type PerlinOracle struct {
	p *perlin.Perlin
}

// NewPerlinOracle builds a PerlinOracle seeded deterministically from seed.
func NewPerlinOracle(seed int64) *PerlinOracle {
	return &PerlinOracle{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Noise3D implements Oracle.
func (o *PerlinOracle) Noise3D(x, y, z float64) float64 {
	return o.p.Noise3D(x, y, z)
}

// margin is the fraction of each dimension, on every side, that is never
// land regardless of noise, keeping the island clear of the map border.
const margin = 0.00075

// IsLand reports whether p is land: strictly inside the border margin and
// above the noise threshold that carves a roughly circular island out of
// [width x height], using zSeed to make the island's shape a function of
// the map seed.
func IsLand(oracle Oracle, p vec2.V, width, height, zSeed float64) bool {
	marginX := margin * width
	marginY := margin * height
	if p.X <= marginX || p.X >= width-marginX || p.Y <= marginY || p.Y >= height-marginY {
		return false
	}

	cx, cy := width/2, height/2
	minDim := width
	if height < minDim {
		minDim = height
	}

	// Recenter on the map center and scale so the map spans roughly [-2,2].
	nx := (p.X - cx) / (width / 2) * 2
	ny := (p.Y - cy) / (height / 2) * 2

	r := vec2.New(p.X-cx, p.Y-cy).Length() / minDim

	threshold := 0.3*r + (r - 0.5)

	return oracle.Noise3D(nx, ny, zSeed) >= threshold
}
