// Package hexgrid builds the mesh topology: a flat-top hex tiling of a
// rectangular map, wired into a meshgraph.Mesh of Centers, Corners and
// Edges.
package hexgrid

import (
	"fmt"
	"math"

	"github.com/islandforge/islandmap/meshgraph"
	"github.com/islandforge/islandmap/vec2"
)

// Size is the hard-wired per-cell pixel size on both axes; the hex grid's
// geometry does not depend on the quadtree's point spread.
const Size = 10.0

// cornerAngles are the flat-top hex vertex angles, in radians, starting
// from 0 and stepping 60 degrees.
var cornerAngles = func() [6]float64 {
	var out [6]float64
	for i := 0; i < 6; i++ {
		out[i] = float64(i) * math.Pi / 3
	}

	return out
}()

// key rounds a position to an int pair for the center dedup lookup.
func key(p vec2.V) [2]int64 {
	return [2]int64{int64(math.Round(p.X)), int64(math.Round(p.Y))}
}

// Build lays a flat-top hex grid of the hard-wired cell size (Size) over
// [0,width)x[0,height). See BuildWithSize for a size override.
func Build(width, height float64) *meshgraph.Mesh {
	return BuildWithSize(width, height, Size)
}

// BuildWithSize lays a flat-top hex grid of cell size size over
// [0,width)x[0,height), returning a fully wired mesh: one Center per hex
// cell, six fresh Corners per cell (corners are not deduplicated across
// neighboring hexes), edges between consecutive corners, and the
// finishing adjacency pass applied.
func BuildWithSize(width, height, size float64) *meshgraph.Mesh {
	m := meshgraph.New()
	centerByKey := make(map[[2]int64]meshgraph.CenterIdx)

	colSpacing := size * 1.5
	rowSpacing := size * math.Sqrt(3)

	col := 0
	for x := 0.0; x < width; x += colSpacing {
		yOffset := 0.0
		if col%2 == 1 {
			yOffset = rowSpacing / 2
		}

		for y := yOffset; y < height; y += rowSpacing {
			center := vec2.New(x, y)
			k := key(center)

			cIdx, ok := centerByKey[k]
			if !ok {
				cIdx = m.AddCenter(center)
				centerByKey[k] = cIdx
			}

			addCell(m, cIdx, center, size)
		}

		col++
	}

	m.FinishTopology()

	return m
}

// addCell creates six fresh corners around center, links them to cIdx, and
// creates the six boundary edges, reusing an existing edge between two
// corners if one already connects them (in practice corners are never
// shared across cells, so this path is dead, but it mirrors the contract:
// never silently duplicate an edge between two corners that already have
// one).
func addCell(m *meshgraph.Mesh, cIdx meshgraph.CenterIdx, center vec2.V, size float64) {
	var corners [6]meshgraph.CornerIdx
	for i, angle := range cornerAngles {
		p := vec2.V{X: center.X + size*math.Cos(angle), Y: center.Y + size*math.Sin(angle)}
		corners[i] = m.AddCorner(p)
	}

	m.Centers[cIdx].Corners = append(m.Centers[cIdx].Corners, corners[:]...)
	for _, q := range corners {
		m.Corners[q].Centers = append(m.Corners[q].Centers, cIdx)
	}

	for i := 0; i < 6; i++ {
		a := corners[i]
		b := corners[(i+1)%6]

		if existing := edgeBetween(m, a, b); existing != meshgraph.NoIndex {
			continue
		}

		m.AddEdge(cIdx, meshgraph.NoIndex, a, b)
	}
}

func edgeBetween(m *meshgraph.Mesh, a, b meshgraph.CornerIdx) meshgraph.EdgeIdx {
	for _, e := range m.Corners[a].Edges {
		edge := m.Edges[e]
		if (edge.V0 == a && edge.V1 == b) || (edge.V0 == b && edge.V1 == a) {
			return e
		}
	}

	return meshgraph.NoIndex
}

// Describe reports the grid's coarse shape, useful for logging at
// generation start.
func Describe(width, height, size float64) string {
	return fmt.Sprintf("hexgrid %gx%g size=%g col=%g row=%g", width, height, size, size*1.5, size*math.Sqrt(3))
}
