package islandmap

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/islandforge/islandmap/bfs"
	"github.com/islandforge/islandmap/core"
	"github.com/islandforge/islandmap/dfs"
	"github.com/islandforge/islandmap/dijkstra"
	"github.com/islandforge/islandmap/flow"
	"github.com/islandforge/islandmap/gridgraph"
	"github.com/islandforge/islandmap/matrix"
	"github.com/islandforge/islandmap/meshgraph"
	"github.com/islandforge/islandmap/prim_kruskal"
	"github.com/islandforge/islandmap/tsp"
	"github.com/islandforge/islandmap/vec2"
)

func centerID(i int) string { return strconv.Itoa(i) }

func centerIndex(id string) (CenterIndex, error) {
	i, err := strconv.Atoi(id)
	if err != nil {
		return 0, ErrUnknownIndex
	}

	return i, nil
}

// LandGraph exports the non-water Center adjacency as an undirected graph
// weighted by Euclidean center-to-center distance, rounded to the nearest
// integer. Every analytic method below builds on top of it.
func (m *Map) LandGraph() (*core.Graph, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}

	g := core.NewGraph(core.WithWeighted())
	for i := range m.mesh.Centers {
		if m.mesh.Centers[i].Water {
			continue
		}
		if err := g.AddVertex(centerID(i)); err != nil {
			return nil, err
		}
	}

	for _, e := range m.mesh.Edges {
		if e.D0 == meshgraph.NoIndex || e.D1 == meshgraph.NoIndex {
			continue
		}

		c0, c1 := m.mesh.Centers[e.D0], m.mesh.Centers[e.D1]
		if c0.Water || c1.Water {
			continue
		}

		dist := int64(math.Round(c0.Position.Distance(c1.Position)))
		if _, err := g.AddEdge(centerID(int(e.D0)), centerID(int(e.D1)), dist); err != nil {
			if !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return nil, err
			}
		}
	}

	return g, nil
}

// DistanceToCoast runs a multi-source BFS from every coast Center over
// LandGraph, labelling each land Center with its hop distance from the
// coast.
func (m *Map) DistanceToCoast() (map[CenterIndex]int, error) {
	g, err := m.LandGraph()
	if err != nil {
		return nil, err
	}

	var starts []string
	for i := range m.mesh.Centers {
		c := m.mesh.Centers[i]
		if !c.Water && c.Coast {
			starts = append(starts, centerID(i))
		}
	}
	if len(starts) == 0 {
		return map[CenterIndex]int{}, nil
	}

	res, err := bfs.MultiSource(g, starts)
	if err != nil {
		return nil, err
	}

	out := make(map[CenterIndex]int, len(res.Distance))
	for id, d := range res.Distance {
		idx, err := centerIndex(id)
		if err != nil {
			return nil, err
		}
		out[idx] = d
	}

	return out, nil
}

// VerifyRiverAcyclic builds a directed graph of corner->downslope edges
// that actually carry a river (RiverVolume > 0) and runs a cycle check over
// it. A cycle would mean water flows in a loop forever, which the
// downslope-walk construction should make impossible; this is an executable
// check of that invariant.
func (m *Map) VerifyRiverAcyclic() error {
	if !m.generated {
		return ErrNotGenerated
	}

	g := core.NewGraph(core.WithDirected(true))
	for _, e := range m.mesh.Edges {
		if e.RiverVolume <= 0 {
			continue
		}
		if e.V0 == meshgraph.NoIndex || e.V1 == meshgraph.NoIndex {
			continue
		}

		from, to := e.V0, e.V1
		if m.mesh.Corners[to].Downslope == from {
			from, to = to, from
		}

		if _, err := g.AddEdge(cornerID(int(from)), cornerID(int(to)), 0); err != nil {
			if !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return err
			}
		}
	}

	if err := dfs.DetectCycle(g); err != nil {
		return fmt.Errorf("islandmap: river graph is not acyclic: %w", err)
	}

	return nil
}

func cornerID(i int) string { return "c" + strconv.Itoa(i) }

// RouteBetween finds the cheapest land route between two Centers over
// LandGraph, with each edge's base distance weight multiplied by
// (1 + elevation jump between the two Centers) to prefer gentle terrain.
func (m *Map) RouteBetween(a, b CenterIndex) ([]CenterIndex, int64, error) {
	if !m.generated {
		return nil, 0, ErrNotGenerated
	}
	if a < 0 || a >= len(m.mesh.Centers) || b < 0 || b >= len(m.mesh.Centers) {
		return nil, 0, ErrUnknownIndex
	}

	g := core.NewGraph(core.WithWeighted())
	for i := range m.mesh.Centers {
		if m.mesh.Centers[i].Water {
			continue
		}
		if err := g.AddVertex(centerID(i)); err != nil {
			return nil, 0, err
		}
	}

	for _, e := range m.mesh.Edges {
		if e.D0 == meshgraph.NoIndex || e.D1 == meshgraph.NoIndex {
			continue
		}

		c0, c1 := m.mesh.Centers[e.D0], m.mesh.Centers[e.D1]
		if c0.Water || c1.Water {
			continue
		}

		dist := c0.Position.Distance(c1.Position)
		jump := math.Abs(c0.Elevation - c1.Elevation)
		weight := int64(math.Round(dist * (1 + jump)))

		if _, err := g.AddEdge(centerID(int(e.D0)), centerID(int(e.D1)), weight); err != nil {
			if !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return nil, 0, err
			}
		}
	}

	if m.mesh.Centers[a].Water || m.mesh.Centers[b].Water {
		return nil, 0, ErrUnknownIndex
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(centerID(a)), dijkstra.Target(centerID(b)))
	if err != nil {
		return nil, 0, err
	}

	pathIDs, ok := dijkstra.Path(prev, centerID(a), centerID(b))
	if !ok {
		return nil, 0, ErrCenterNotFound
	}

	path := make([]CenterIndex, len(pathIDs))
	for i, id := range pathIDs {
		idx, err := centerIndex(id)
		if err != nil {
			return nil, 0, err
		}
		path[i] = idx
	}

	return path, dist[centerID(b)], nil
}

// RasterComponents rasterizes the Width x Height map rectangle into a grid of `cell`
// x `cell` land/water cells (land iff the nearest Center to the cell's
// midpoint is non-water) and labels connected land components.
func (m *Map) RasterComponents(cell float64) (map[int][][2]int, error) {
	if !m.generated {
		return nil, ErrNotGenerated
	}
	if cell <= 0 {
		return nil, ErrInvalidDimensions
	}

	width, height := float64(m.cfg.Width), float64(m.cfg.Height)
	cols := int(math.Ceil(width / cell))
	rows := int(math.Ceil(height / cell))
	if cols == 0 || rows == 0 {
		return nil, ErrInvalidDimensions
	}

	land := make([][]bool, rows)
	for y := 0; y < rows; y++ {
		land[y] = make([]bool, cols)
		for x := 0; x < cols; x++ {
			p := vec2.New((float64(x)+0.5)*cell, (float64(y)+0.5)*cell)
			idx, err := m.CenterAt(p)
			if err != nil {
				continue
			}
			land[y][x] = !m.mesh.Centers[idx].Water
		}
	}

	grid, err := gridgraph.New(land)
	if err != nil {
		return nil, err
	}

	return grid.Components(), nil
}

// RoadNetwork computes a minimum spanning tree over LandGraph: the cheapest
// edge set connecting every land Center.
func (m *Map) RoadNetwork() ([]meshgraph.EdgeIdx, int64, error) {
	g, err := m.LandGraph()
	if err != nil {
		return nil, 0, err
	}

	tree, weight, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return nil, 0, err
	}

	edgeIdx := make(map[[2]CenterIndex]meshgraph.EdgeIdx)
	for _, e := range m.mesh.Edges {
		if e.D0 == meshgraph.NoIndex || e.D1 == meshgraph.NoIndex {
			continue
		}
		edgeIdx[[2]CenterIndex{int(e.D0), int(e.D1)}] = e.Index
		edgeIdx[[2]CenterIndex{int(e.D1), int(e.D0)}] = e.Index
	}

	out := make([]meshgraph.EdgeIdx, 0, len(tree))
	for _, te := range tree {
		from, err := centerIndex(te.From)
		if err != nil {
			return nil, 0, err
		}
		to, err := centerIndex(te.To)
		if err != nil {
			return nil, 0, err
		}
		if idx, ok := edgeIdx[[2]CenterIndex{from, to}]; ok {
			out = append(out, idx)
		}
	}

	return out, weight, nil
}

// RiverDischargeCapacity computes the maximum flow from sourceCorner to a
// virtual ocean sink over a graph of river-carrying corner edges, where
// each edge's capacity is its river_volume, carried in thousandths (rounded
// to the nearest thousandth). Every coastal corner with a river is wired to
// the sink.
func (m *Map) RiverDischargeCapacity(sourceCorner meshgraph.CornerIdx) (float64, error) {
	if !m.generated {
		return 0, ErrNotGenerated
	}
	if int(sourceCorner) < 0 || int(sourceCorner) >= len(m.mesh.Corners) {
		return 0, ErrUnknownIndex
	}

	const sink = "sink"

	g := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	if err := g.AddVertex(sink); err != nil {
		return 0, err
	}

	for _, e := range m.mesh.Edges {
		if e.RiverVolume <= 0 {
			continue
		}
		if e.V0 == meshgraph.NoIndex || e.V1 == meshgraph.NoIndex {
			continue
		}

		from, to := e.V0, e.V1
		if m.mesh.Corners[to].Downslope == from {
			from, to = to, from
		}

		cap := int64(math.Round(e.RiverVolume * 1000))
		if _, err := g.AddEdge(cornerID(int(from)), cornerID(int(to)), cap); err != nil {
			if !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
				return 0, err
			}
		}

		if m.mesh.Corners[to].Coast {
			if _, err := g.AddEdge(cornerID(int(to)), sink, cap); err != nil {
				if !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
					return 0, err
				}
			}
		}
	}

	if !g.HasVertex(cornerID(int(sourceCorner))) {
		return 0, nil
	}

	maxFlow, err := flow.EdmondsKarp(context.Background(), g, cornerID(int(sourceCorner)), sink)
	if err != nil {
		return 0, err
	}

	return float64(maxFlow) / 1000, nil
}

// AdjacencyMatrix exports LandGraph as a dense adjacency matrix, along with
// the Center index each row/column corresponds to.
func (m *Map) AdjacencyMatrix() (*matrix.Dense, []CenterIndex, error) {
	g, err := m.LandGraph()
	if err != nil {
		return nil, nil, err
	}

	vertices := g.Vertices()
	idxMap, mat, err := matrix.BuildDenseAdjacency(vertices, g.Edges(), matrix.WithWeighted())
	if err != nil {
		return nil, nil, err
	}

	order := make([]CenterIndex, len(vertices))
	for id, pos := range idxMap {
		ci, err := centerIndex(id)
		if err != nil {
			return nil, nil, err
		}
		order[pos] = ci
	}

	return mat, order, nil
}

// AllPairsLandDistances runs Floyd-Warshall over the adjacency matrix
// produced by AdjacencyMatrix, returning an all-pairs distance table in the
// same Center order.
func (m *Map) AllPairsLandDistances() (*matrix.Dense, []CenterIndex, error) {
	mat, order, err := m.AdjacencyMatrix()
	if err != nil {
		return nil, nil, err
	}

	if err := matrix.ApplyMetricClosure(mat); err != nil {
		return nil, nil, err
	}

	return mat, order, nil
}

// CoastalPatrolRoute builds a closed tour over every coast Center using a
// nearest-neighbor construction refined by 2-opt, suitable for a patrol or
// scouting unit to follow.
func (m *Map) CoastalPatrolRoute() ([]CenterIndex, int64, error) {
	if !m.generated {
		return nil, 0, ErrNotGenerated
	}

	var coast []CenterIndex
	for i := range m.mesh.Centers {
		if !m.mesh.Centers[i].Water && m.mesh.Centers[i].Coast {
			coast = append(coast, i)
		}
	}
	if len(coast) < 2 {
		return coast, 0, nil
	}

	dist := make([][]float64, len(coast))
	for i := range coast {
		dist[i] = make([]float64, len(coast))
		for j := range coast {
			if i == j {
				continue
			}
			dist[i][j] = m.mesh.Centers[coast[i]].Position.Distance(m.mesh.Centers[coast[j]].Position)
		}
	}

	tour, cost, err := tsp.Solve(dist)
	if err != nil {
		return nil, 0, err
	}

	out := make([]CenterIndex, len(tour))
	for i, t := range tour {
		out[i] = coast[t]
	}

	return out, int64(math.Round(cost)), nil
}
