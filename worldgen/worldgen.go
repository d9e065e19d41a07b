// Package worldgen runs the fourteen-pass labelling pipeline that turns a
// bare hex mesh into a finished island: ocean/coast/water flags, corner and
// polygon elevation, downslopes, rivers, moisture, and biomes.
package worldgen

import (
	"math"
	"sort"
	"time"

	"github.com/islandforge/islandmap/biome"
	"github.com/islandforge/islandmap/islandmask"
	"github.com/islandforge/islandmap/mapseed"
	"github.com/islandforge/islandmap/meshgraph"
)

// elevationScale is SCALE in the elevation redistribution formula.
const elevationScale = 1.05

// RunOptions configures a pipeline run. Trace, if set, is called after each
// of the fourteen passes with its name and wall-clock duration; it defaults
// to a no-op and exists purely for diagnostics.
type RunOptions struct {
	Trace func(pass string, elapsed time.Duration)
}

// Option mutates a RunOptions.
type Option func(*RunOptions)

// WithTrace installs a per-pass timing hook.
func WithTrace(fn func(pass string, elapsed time.Duration)) Option {
	return func(o *RunOptions) { o.Trace = fn }
}

// Run executes the fourteen passes over m in place. width/height are the
// map rectangle the hex grid was built over; oracle and zSeed drive the
// island mask; stream supplies the river pass's random corner draws.
func Run(m *meshgraph.Mesh, width, height float64, oracle islandmask.Oracle, zSeed float64, stream *mapseed.Stream, opts ...Option) {
	var o RunOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.Trace == nil {
		o.Trace = func(string, time.Duration) {}
	}

	run := func(name string, fn func()) {
		start := time.Now()
		fn()
		o.Trace(name, time.Since(start))
	}

	run("border-water-init", func() { cornerBorderInit(m, width, height) })
	run("water-test", func() { cornerWaterTest(m, oracle, width, height, zSeed) })
	run("center-ocean-flood", func() { centerOceanFlood(m) })
	run("center-coast", func() { centerCoast(m) })
	run("corner-recompute", func() { cornerRecompute(m) })
	run("corner-elevation-bfs", func() { cornerElevationBFS(m) })
	run("elevation-redistribution", func() { elevationRedistribution(m) })
	run("polygon-elevation", func() { polygonElevation(m) })
	run("downslopes", func() { downslopes(m) })
	run("rivers", func() { rivers(m, stream) })
	run("moisture-bfs", func() { corMoistureBFS(m) })
	run("moisture-redistribution", func() { moistureRedistribution(m) })
	run("polygon-moisture", func() { polygonMoisture(m) })
	run("biomes", func() { assignBiomes(m) })
}

func outsideRect(p meshgraph.Corner, width, height float64) bool {
	return p.Position.X < 0 || p.Position.X >= width || p.Position.Y < 0 || p.Position.Y >= height
}

// pass 1
func cornerBorderInit(m *meshgraph.Mesh, width, height float64) {
	for i := range m.Corners {
		if outsideRect(m.Corners[i], width, height) {
			m.Corners[i].Border = true
			m.Corners[i].Ocean = true
			m.Corners[i].Water = true
		}
	}
}

// pass 2
func cornerWaterTest(m *meshgraph.Mesh, oracle islandmask.Oracle, width, height, zSeed float64) {
	for i := range m.Corners {
		m.Corners[i].Water = !islandmask.IsLand(oracle, m.Corners[i].Position, width, height, zSeed)
	}
}

// pass 3
func centerOceanFlood(m *meshgraph.Mesh) {
	var queue []meshgraph.CenterIdx

	for i := range m.Centers {
		hasBorderCorner := false
		for _, qi := range m.Centers[i].Corners {
			if m.Corners[qi].Border {
				hasBorderCorner = true
				m.Corners[qi].Water = true
			}
		}

		if hasBorderCorner {
			m.Centers[i].Border = true
			m.Centers[i].Ocean = true
			queue = append(queue, meshgraph.CenterIdx(i))
		}

		waterCorners := 0
		for _, qi := range m.Centers[i].Corners {
			if m.Corners[qi].Water {
				waterCorners++
			}
		}
		m.Centers[i].Water = m.Centers[i].Ocean || (len(m.Centers[i].Corners) > 0 &&
			2*waterCorners >= len(m.Centers[i].Corners))
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		for _, n := range m.Centers[c].Centers {
			if m.Centers[n].Water && !m.Centers[n].Ocean {
				m.Centers[n].Ocean = true
				queue = append(queue, n)
			}
		}
	}
}

// pass 4
func centerCoast(m *meshgraph.Mesh) {
	for i := range m.Centers {
		hasOcean, hasLand := false, false
		for _, n := range m.Centers[i].Centers {
			if m.Centers[n].Ocean {
				hasOcean = true
			}
			if !m.Centers[n].Water {
				hasLand = true
			}
		}
		m.Centers[i].Coast = hasOcean && hasLand
	}
}

// pass 5
func cornerRecompute(m *meshgraph.Mesh) {
	for i := range m.Corners {
		hasOcean, hasLand := false, false
		allOcean := len(m.Corners[i].Centers) > 0

		for _, c := range m.Corners[i].Centers {
			if m.Centers[c].Ocean {
				hasOcean = true
			} else {
				allOcean = false
			}
			if !m.Centers[c].Water {
				hasLand = true
			}
		}

		m.Corners[i].Ocean = allOcean
		m.Corners[i].Coast = hasLand && hasOcean
		m.Corners[i].Water = m.Corners[i].Border || (!hasLand && !m.Corners[i].Coast)
	}
}

// pass 6
func cornerElevationBFS(m *meshgraph.Mesh) {
	for i := range m.Corners {
		if m.Corners[i].Border {
			m.Corners[i].Elevation = 0
		} else {
			m.Corners[i].Elevation = math.Inf(1)
		}
	}

	queue := make([]meshgraph.CornerIdx, 0, len(m.Corners))
	for i := range m.Corners {
		if m.Corners[i].Border {
			queue = append(queue, meshgraph.CornerIdx(i))
		}
	}

	isLand := func(q meshgraph.CornerIdx) bool { return !m.Corners[q].Water }

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		for _, s := range m.Corners[q].Corners {
			candidate := m.Corners[q].Elevation + 0.01
			if isLand(q) && isLand(s) {
				candidate += 1.0
			}
			if candidate < m.Corners[s].Elevation {
				m.Corners[s].Elevation = candidate
				queue = append(queue, s)
			}
		}
	}

	for i := range m.Corners {
		if m.Corners[i].Water {
			m.Corners[i].Elevation = 0
		}
	}
}

func landCornerIndices(m *meshgraph.Mesh) []meshgraph.CornerIdx {
	out := make([]meshgraph.CornerIdx, 0, len(m.Corners))
	for i := range m.Corners {
		if !m.Corners[i].Water {
			out = append(out, meshgraph.CornerIdx(i))
		}
	}

	return out
}

// pass 7
func elevationRedistribution(m *meshgraph.Mesh) {
	land := landCornerIndices(m)
	sort.Slice(land, func(i, j int) bool {
		return m.Corners[land[i]].Elevation < m.Corners[land[j]].Elevation
	})

	n := len(land)
	if n == 0 {
		return
	}
	if n == 1 {
		m.Corners[land[0]].Elevation = 1.0

		return
	}

	for i, idx := range land {
		frac := float64(i) / float64(n-1)
		e := math.Sqrt(elevationScale) - math.Sqrt(elevationScale*(1-frac))
		if e > 1.0 {
			e = 1.0
		}
		m.Corners[idx].Elevation = e
	}
}

// pass 8
func polygonElevation(m *meshgraph.Mesh) {
	for i := range m.Centers {
		if len(m.Centers[i].Corners) == 0 {
			continue
		}

		sum := 0.0
		for _, q := range m.Centers[i].Corners {
			sum += m.Corners[q].Elevation
		}
		m.Centers[i].Elevation = sum / float64(len(m.Centers[i].Corners))
	}
}

// pass 9
func downslopes(m *meshgraph.Mesh) {
	for i := range m.Corners {
		best := meshgraph.CornerIdx(i)
		bestElev := m.Corners[i].Elevation

		for _, n := range m.Corners[i].Corners {
			if m.Corners[n].Elevation < bestElev {
				bestElev = m.Corners[n].Elevation
				best = n
			}
		}

		m.Corners[i].Downslope = best
	}
}

// pass 10
func rivers(m *meshgraph.Mesh, stream *mapseed.Stream) {
	if len(m.Corners) == 0 {
		return
	}

	nRivers := len(m.Centers) / 3

	for i := 0; i < nRivers; i++ {
		idx := int(stream.Float64() * float64(len(m.Corners)))
		if idx >= len(m.Corners) {
			idx = len(m.Corners) - 1
		}

		c := m.Corners[idx]
		if c.Ocean {
			continue
		}
		if c.Elevation < 0.3 || c.Elevation > 0.9 {
			continue
		}

		walkRiver(m, meshgraph.CornerIdx(idx))
	}
}

func walkRiver(m *meshgraph.Mesh, source meshgraph.CornerIdx) {
	current := source

	for {
		m.Corners[current].RiverVolume++

		down := m.Corners[current].Downslope
		if m.Corners[current].Coast || down == current {
			return
		}

		if e := edgeBetweenCorners(m, current, down); e != meshgraph.NoIndex {
			m.Edges[e].RiverVolume++
		}

		current = down
	}
}

func edgeBetweenCorners(m *meshgraph.Mesh, a, b meshgraph.CornerIdx) meshgraph.EdgeIdx {
	for _, e := range m.Corners[a].Edges {
		edge := m.Edges[e]
		if (edge.V0 == a && edge.V1 == b) || (edge.V0 == b && edge.V1 == a) {
			return e
		}
	}

	return meshgraph.NoIndex
}

// pass 11
func corMoistureBFS(m *meshgraph.Mesh) {
	for i := range m.Corners {
		m.Corners[i].Moisture = 0
	}

	// wave A: fresh water
	var queue []meshgraph.CornerIdx
	for i := range m.Corners {
		if m.Corners[i].Ocean {
			continue
		}
		switch {
		case m.Corners[i].RiverVolume > 0:
			mo := 0.2 * m.Corners[i].RiverVolume
			if mo > 3.0 {
				mo = 3.0
			}
			m.Corners[i].Moisture = mo
			queue = append(queue, meshgraph.CornerIdx(i))
		case m.Corners[i].Water:
			m.Corners[i].Moisture = 1.0
			queue = append(queue, meshgraph.CornerIdx(i))
		}
	}
	bfsMoisture(m, queue, 0.9)

	// wave B: salt water
	queue = queue[:0]
	for i := range m.Corners {
		if m.Corners[i].Ocean {
			m.Corners[i].Moisture = 1.0
			queue = append(queue, meshgraph.CornerIdx(i))
		}
	}
	bfsMoisture(m, queue, 0.3)
}

func bfsMoisture(m *meshgraph.Mesh, queue []meshgraph.CornerIdx, decay float64) {
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]

		for _, s := range m.Corners[q].Corners {
			candidate := decay * m.Corners[q].Moisture
			if candidate > m.Corners[s].Moisture {
				m.Corners[s].Moisture = candidate
				queue = append(queue, s)
			}
		}
	}
}

// pass 12
func moistureRedistribution(m *meshgraph.Mesh) {
	land := landCornerIndices(m)
	sort.Slice(land, func(i, j int) bool {
		return m.Corners[land[i]].Moisture < m.Corners[land[j]].Moisture
	})

	n := len(land)
	if n == 0 {
		return
	}
	if n == 1 {
		m.Corners[land[0]].Moisture = 1.0

		return
	}

	for i, idx := range land {
		m.Corners[idx].Moisture = float64(i) / float64(n-1)
	}
}

// pass 13
func polygonMoisture(m *meshgraph.Mesh) {
	for i := range m.Corners {
		if m.Corners[i].Moisture > 1.0 {
			m.Corners[i].Moisture = 1.0
		}
	}

	for i := range m.Centers {
		if len(m.Centers[i].Corners) == 0 {
			continue
		}

		sum := 0.0
		for _, q := range m.Centers[i].Corners {
			sum += m.Corners[q].Moisture
		}
		m.Centers[i].Moisture = sum / float64(len(m.Centers[i].Corners))
	}
}

// pass 14
func assignBiomes(m *meshgraph.Mesh) {
	for i := range m.Centers {
		c := &m.Centers[i]
		c.Biome = biome.Classify(c.Ocean, c.Water, c.Coast, c.Elevation, c.Moisture)
	}
}
