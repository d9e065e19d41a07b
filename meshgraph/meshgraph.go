// Package meshgraph is the dual-graph data model of the generated world: a
// planar mesh of Centers (hex cells), Corners (hex vertices) and Edges (hex
// sides), held in three parallel arenas and cross-referenced purely by
// index. No entity ever holds a pointer to another; indices are never
// reused and stay valid for the life of the Mesh.
package meshgraph

import (
	"sort"

	"github.com/islandforge/islandmap/biome"
	"github.com/islandforge/islandmap/vec2"
)

// CenterIdx, CornerIdx and EdgeIdx are arena indices. A negative value
// stands for "unset" (the Option<Idx> of the originating design).
type (
	CenterIdx int
	CornerIdx int
	EdgeIdx   int
)

// NoIndex marks an unset optional index (e.g. Edge.D1 on a border edge).
const NoIndex = -1

// Center is one hex cell.
type Center struct {
	Index    CenterIdx
	Position vec2.V

	Water, Ocean, Coast, Border bool
	Biome                       biome.Tag
	Elevation, Moisture         float64

	Edges   []EdgeIdx
	Corners []CornerIdx
	Centers []CenterIdx
}

// Corner is one hex vertex.
type Corner struct {
	Index    CornerIdx
	Position vec2.V

	Water, Ocean, Coast, Border bool
	Elevation, Moisture         float64
	RiverVolume                 float64
	Downslope                   CornerIdx

	Centers []CenterIdx
	Edges   []EdgeIdx
	Corners []CornerIdx
}

// Edge is one hex side. D0/D1 are the Delaunay (center) side, D1 is
// NoIndex on a map-border edge. V0/V1 are the Voronoi (corner) side.
type Edge struct {
	Index EdgeIdx

	D0, D1 CenterIdx
	V0, V1 CornerIdx

	RiverVolume     float64
	VoronoiMidpoint vec2.V
}

// Mesh owns the three entity arenas.
type Mesh struct {
	Centers []Center
	Corners []Corner
	Edges   []Edge
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// AddCenter appends a new Center at p and returns its index.
func (m *Mesh) AddCenter(p vec2.V) CenterIdx {
	idx := CenterIdx(len(m.Centers))
	m.Centers = append(m.Centers, Center{Index: idx, Position: p})

	return idx
}

// AddCorner appends a new Corner at p and returns its index. Downslope
// defaults to the corner itself.
func (m *Mesh) AddCorner(p vec2.V) CornerIdx {
	idx := CornerIdx(len(m.Corners))
	m.Corners = append(m.Corners, Corner{Index: idx, Position: p, Downslope: idx})

	return idx
}

// AddEdge appends a new Edge between centers d0/d1 and corners v0/v1,
// wiring the back-references on all four endpoints, and returns its index.
func (m *Mesh) AddEdge(d0, d1 CenterIdx, v0, v1 CornerIdx) EdgeIdx {
	idx := EdgeIdx(len(m.Edges))
	e := Edge{Index: idx, D0: d0, D1: d1, V0: v0, V1: v1}
	if v0 != NoIndex && v1 != NoIndex {
		e.VoronoiMidpoint = vec2.V{
			X: (m.Corners[v0].Position.X + m.Corners[v1].Position.X) / 2,
			Y: (m.Corners[v0].Position.Y + m.Corners[v1].Position.Y) / 2,
		}
	}
	m.Edges = append(m.Edges, e)

	if d0 != NoIndex {
		m.Centers[d0].Edges = append(m.Centers[d0].Edges, idx)
	}
	if d1 != NoIndex {
		m.Centers[d1].Edges = append(m.Centers[d1].Edges, idx)
	}
	if v0 != NoIndex {
		m.Corners[v0].Edges = append(m.Corners[v0].Edges, idx)
	}
	if v1 != NoIndex {
		m.Corners[v1].Edges = append(m.Corners[v1].Edges, idx)
	}

	return idx
}

// SortCorners orders a Center's corner list counter-clockwise around its
// position: a corner in the right half-plane sorts before one in the left
// half; among corners with x==0 relative to center, the smaller y sorts
// first; otherwise the sign of the cross product (a-c)x(b-c) decides.
func (m *Mesh) SortCorners(c CenterIdx) {
	center := m.Centers[c]
	corners := center.Corners

	sort.Slice(corners, func(i, j int) bool {
		return goesBefore(center.Position, m.Corners[corners[i]].Position, m.Corners[corners[j]].Position)
	})
}

func goesBefore(center, a, b vec2.V) bool {
	ra := a.Sub(center)
	rb := b.Sub(center)

	aRight := ra.X >= 0
	bRight := rb.X >= 0

	if aRight != bRight {
		return aRight
	}
	if ra.X == 0 && rb.X == 0 {
		return ra.Y < rb.Y
	}

	return ra.Cross(rb) > 0
}

// BoundingBox returns the center/half-diagonal box spanning a Center's
// corners.
func (m *Mesh) BoundingBox(c CenterIdx) (center, half vec2.V) {
	corners := m.Centers[c].Corners
	if len(corners) == 0 {
		return m.Centers[c].Position, vec2.V{}
	}

	minP := m.Corners[corners[0]].Position
	maxP := minP
	for _, ci := range corners[1:] {
		p := m.Corners[ci].Position
		if p.X < minP.X {
			minP.X = p.X
		}
		if p.Y < minP.Y {
			minP.Y = p.Y
		}
		if p.X > maxP.X {
			maxP.X = p.X
		}
		if p.Y > maxP.Y {
			maxP.Y = p.Y
		}
	}

	center = vec2.V{X: (minP.X + maxP.X) / 2, Y: (minP.Y + maxP.Y) / 2}
	half = vec2.V{X: (maxP.X - minP.X) / 2, Y: (maxP.Y - minP.Y) / 2}

	return center, half
}

// OppositeCenter returns the Center on the other side of edge e from c, or
// NoIndex if e is a border edge incident to c.
func (m *Mesh) OppositeCenter(e EdgeIdx, c CenterIdx) CenterIdx {
	edge := m.Edges[e]
	switch {
	case edge.D0 == c:
		return edge.D1
	case edge.D1 == c:
		return edge.D0
	default:
		return NoIndex
	}
}

// OppositeCorner returns the Corner on the other side of edge e from q.
func (m *Mesh) OppositeCorner(e EdgeIdx, q CornerIdx) CornerIdx {
	edge := m.Edges[e]
	switch {
	case edge.V0 == q:
		return edge.V1
	case edge.V1 == q:
		return edge.V0
	default:
		return NoIndex
	}
}

// LandCorners returns the index of every non-water corner.
func (m *Mesh) LandCorners() []CornerIdx {
	var out []CornerIdx
	for i := range m.Corners {
		if !m.Corners[i].Water {
			out = append(out, CornerIdx(i))
		}
	}

	return out
}

// LakeCorners returns the index of every corner that is water but not
// ocean: the land-mask equivalent of a lake.
func (m *Mesh) LakeCorners() []CornerIdx {
	var out []CornerIdx
	for i := range m.Corners {
		if m.Corners[i].Water && !m.Corners[i].Ocean {
			out = append(out, CornerIdx(i))
		}
	}

	return out
}

// FinishTopology fills the cross-adjacency lists that only make sense once
// every Center/Corner/Edge has been created: each Center's corners are
// sorted CCW, each Center gains the opposite Center across every incident
// edge, and each Corner gains the opposite Corner across every incident
// edge.
func (m *Mesh) FinishTopology() {
	for i := range m.Centers {
		m.SortCorners(CenterIdx(i))
	}

	for i := range m.Centers {
		c := CenterIdx(i)
		for _, e := range m.Centers[i].Edges {
			if opp := m.OppositeCenter(e, c); opp != NoIndex {
				m.Centers[i].Centers = append(m.Centers[i].Centers, opp)
			}
		}
	}

	for i := range m.Corners {
		q := CornerIdx(i)
		for _, e := range m.Corners[i].Edges {
			if opp := m.OppositeCorner(e, q); opp != NoIndex {
				m.Corners[i].Corners = append(m.Corners[i].Corners, opp)
			}
		}
	}
}
