package islandmap

import (
	"math/rand"

	"github.com/islandforge/islandmap/islandmask"
)

// CenterIndex, CornerIndex and EdgeIndex are the public names for the
// mesh's arena indices.
type (
	CenterIndex = int
	CornerIndex = int
	EdgeIndex   = int
)

// Config is the plain configuration a Map is built from.
type Config struct {
	Width       int
	Height      int
	PointSpread float64
	Seed        string
}

// options holds the optional overrides a Map construction can take.
type options struct {
	noise           islandmask.Oracle
	rand            *rand.Rand
	hexSize         float64
	maxQuadtreeDepth int
	maxQuadtreeSet   bool
}

// Option overrides a default of New.
type Option func(*options)

// WithNoise overrides the default Perlin noise oracle.
func WithNoise(o islandmask.Oracle) Option {
	return func(o2 *options) { o2.noise = o }
}

// WithRand overrides the random source of the Map's PRNG stream, which
// supplies both the noise z coordinate and the river picks (by default the
// stream is seeded from the seed string's hash; this lets a caller inject a
// fully deterministic external source instead).
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rand = r }
}

// WithHexSize overrides the hard-wired hex cell size (10).
func WithHexSize(size float64) Option {
	return func(o *options) { o.hexSize = size }
}

// WithMaxQuadtreeDepth overrides the computed spatial-index depth.
func WithMaxQuadtreeDepth(depth int) Option {
	return func(o *options) {
		o.maxQuadtreeDepth = depth
		o.maxQuadtreeSet = true
	}
}
