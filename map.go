package islandmap

import (
	"math"

	"github.com/islandforge/islandmap/hexgrid"
	"github.com/islandforge/islandmap/islandmask"
	"github.com/islandforge/islandmap/mapseed"
	"github.com/islandforge/islandmap/meshgraph"
	"github.com/islandforge/islandmap/quadtree"
	"github.com/islandforge/islandmap/vec2"
	"github.com/islandforge/islandmap/worldgen"
)

// Map owns the generated mesh, its spatial index, and everything needed to
// reproduce it: the seed stream and noise oracle. It is built with New,
// populated by Generate, and read-only afterward.
type Map struct {
	cfg Config
	opt options

	stream *mapseed.Stream
	noise  islandmask.Oracle

	mesh *meshgraph.Mesh
	tree *quadtree.Tree[meshgraph.CenterIdx]

	generated bool
}

// New validates cfg and builds a Map ready for Generate. Width, height and
// PointSpread must be positive.
func New(cfg Config, opts ...Option) (*Map, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.PointSpread <= 0 {
		return nil, ErrInvalidDimensions
	}

	o := options{hexSize: hexgrid.Size}
	for _, apply := range opts {
		apply(&o)
	}

	var stream *mapseed.Stream
	if o.rand != nil {
		stream = mapseed.NewFromRand(cfg.Seed, o.rand)
	} else {
		stream = mapseed.New(cfg.Seed)
	}

	noise := o.noise
	if noise == nil {
		noise = islandmask.NewPerlinOracle(int64(mapseed.Hash(stream.Str)))
	}

	return &Map{cfg: cfg, opt: o, stream: stream, noise: noise}, nil
}

// quadtreeDepth implements spec.md §4.2's depth policy: given approximate
// point count N = 2*W*H/(pi*s^2), depth = round(log4 N).
func quadtreeDepth(width, height, pointSpread float64) int {
	n := 2 * width * height / (math.Pi * pointSpread * pointSpread)
	if n < 4 {
		return 1
	}

	depth := int(math.Round(math.Log(n) / math.Log(4)))
	if depth < 1 {
		depth = 1
	}

	return depth
}

// Generate builds the hex mesh, runs the labelling pipeline, and populates
// the spatial index. It is safe to call only once per Map.
func (m *Map) Generate(runOpts ...worldgen.Option) {
	width, height := float64(m.cfg.Width), float64(m.cfg.Height)

	m.mesh = hexgrid.BuildWithSize(width, height, m.opt.hexSize)
	worldgen.Run(m.mesh, width, height, m.noise, m.stream.Z, m.stream, runOpts...)

	depth := m.opt.maxQuadtreeDepth
	if !m.opt.maxQuadtreeSet {
		depth = quadtreeDepth(width, height, m.cfg.PointSpread)
	}

	boundary := quadtree.AABB{
		Center: vec2.New(width/2, height/2),
		Half:   vec2.New(width/2, height/2),
	}
	tree, err := quadtree.New[meshgraph.CenterIdx](boundary, depth)
	if err != nil {
		// A validated Config always yields a positive half-extent and depth.
		panic(err)
	}
	m.tree = tree

	for i := range m.mesh.Centers {
		center, half := m.mesh.BoundingBox(meshgraph.CenterIdx(i))
		if half.IsZero() {
			half = vec2.New(1, 1)
		}
		m.tree.Insert(meshgraph.CenterIdx(i), quadtree.AABB{Center: center, Half: half})
	}

	m.generated = true
}

// Centers returns the read-only list of Centers.
func (m *Map) Centers() ([]meshgraph.Center, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}

	return m.mesh.Centers, nil
}

// Corners returns the read-only list of Corners.
func (m *Map) Corners() ([]meshgraph.Corner, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}

	return m.mesh.Corners, nil
}

// Edges returns the read-only list of Edges.
func (m *Map) Edges() ([]meshgraph.Edge, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}

	return m.mesh.Edges, nil
}

// LakeCorners returns corners that are water but not ocean.
func (m *Map) LakeCorners() ([]meshgraph.CornerIdx, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}

	return m.mesh.LakeCorners(), nil
}

// CenterAt queries the spatial index for the Center nearest p among the
// candidates whose AABB contains p. It does not perform polygon-containment
// testing; nearest-by-distance is the documented contract.
func (m *Map) CenterAt(p vec2.V) (CenterIndex, error) {
	if !m.generated {
		return 0, ErrNotGenerated
	}

	candidates := m.tree.Query(p)
	if len(candidates) == 0 {
		return 0, ErrCenterNotFound
	}

	best := candidates[0]
	bestDist := m.mesh.Centers[best].Position.DistanceSqrd(p)

	for _, c := range candidates[1:] {
		d := m.mesh.Centers[c].Position.DistanceSqrd(p)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}

	return int(best), nil
}
