package meshgraph_test

import (
	"testing"

	"github.com/islandforge/islandmap/meshgraph"
	"github.com/islandforge/islandmap/vec2"
	"github.com/stretchr/testify/require"
)

// square builds a single Center with a four-corner square polygon and
// returns the mesh plus indices.
func square(t *testing.T) (*meshgraph.Mesh, meshgraph.CenterIdx, []meshgraph.CornerIdx) {
	t.Helper()
	m := meshgraph.New()

	c := m.AddCenter(vec2.New(0, 0))

	positions := []vec2.V{
		vec2.New(1, -1),
		vec2.New(1, 1),
		vec2.New(-1, 1),
		vec2.New(-1, -1),
	}
	corners := make([]meshgraph.CornerIdx, len(positions))
	for i, p := range positions {
		corners[i] = m.AddCorner(p)
	}
	m.Centers[c].Corners = append([]meshgraph.CornerIdx{}, corners...)

	for i := 0; i < len(corners); i++ {
		j := (i + 1) % len(corners)
		m.AddEdge(c, meshgraph.NoIndex, corners[i], corners[j])
	}

	return m, c, corners
}

func TestSortCornersIsCCW(t *testing.T) {
	m, c, _ := square(t)
	m.SortCorners(c)

	corners := m.Centers[c].Corners
	require.Len(t, corners, 4)

	center := m.Centers[c].Position
	for i := 0; i < len(corners); i++ {
		a := m.Corners[corners[i]].Position.Sub(center)
		b := m.Corners[corners[(i+1)%len(corners)]].Position.Sub(center)
		require.GreaterOrEqual(t, a.Cross(b), 0.0)
	}
}

func TestBoundingBox(t *testing.T) {
	m, c, _ := square(t)
	center, half := m.BoundingBox(c)
	require.Equal(t, vec2.New(0, 0), center)
	require.Equal(t, vec2.New(1, 1), half)
}

func TestOppositeCenterNoneOnBorderEdge(t *testing.T) {
	m, c, corners := square(t)
	edge := m.Centers[c].Edges[0]
	require.Equal(t, meshgraph.NoIndex, m.OppositeCenter(edge, c))
	require.NotEqual(t, meshgraph.CornerIdx(meshgraph.NoIndex), corners[0])
}

func TestAddEdgeWiresBackReferences(t *testing.T) {
	m := meshgraph.New()
	a := m.AddCenter(vec2.New(0, 0))
	b := m.AddCenter(vec2.New(10, 0))
	q0 := m.AddCorner(vec2.New(5, -1))
	q1 := m.AddCorner(vec2.New(5, 1))

	e := m.AddEdge(a, b, q0, q1)

	require.Contains(t, m.Centers[a].Edges, e)
	require.Contains(t, m.Centers[b].Edges, e)
	require.Contains(t, m.Corners[q0].Edges, e)
	require.Contains(t, m.Corners[q1].Edges, e)
	require.Equal(t, vec2.New(5, 0), m.Edges[e].VoronoiMidpoint)
}

func TestLandAndLakeCorners(t *testing.T) {
	m := meshgraph.New()
	land := m.AddCorner(vec2.New(0, 0))
	lake := m.AddCorner(vec2.New(1, 0))
	ocean := m.AddCorner(vec2.New(2, 0))

	m.Corners[lake].Water = true
	m.Corners[ocean].Water = true
	m.Corners[ocean].Ocean = true

	require.Equal(t, []meshgraph.CornerIdx{land}, m.LandCorners())
	require.Equal(t, []meshgraph.CornerIdx{lake}, m.LakeCorners())
}

func TestFinishTopologyFillsOppositeLists(t *testing.T) {
	m := meshgraph.New()
	a := m.AddCenter(vec2.New(0, 0))
	b := m.AddCenter(vec2.New(10, 0))
	q0 := m.AddCorner(vec2.New(5, -1))
	q1 := m.AddCorner(vec2.New(5, 1))
	m.AddEdge(a, b, q0, q1)
	m.Centers[a].Corners = []meshgraph.CornerIdx{q0, q1}
	m.Centers[b].Corners = []meshgraph.CornerIdx{q0, q1}

	m.FinishTopology()

	require.Contains(t, m.Centers[a].Centers, b)
	require.Contains(t, m.Centers[b].Centers, a)
	require.Contains(t, m.Corners[q0].Corners, q1)
	require.Contains(t, m.Corners[q1].Corners, q0)
}
