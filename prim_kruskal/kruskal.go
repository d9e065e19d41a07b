// Package prim_kruskal computes a minimum spanning tree over an undirected,
// weighted core.Graph using Kruskal's algorithm. Map.RoadNetwork uses it to
// find the cheapest set of edges connecting every land Center.
package prim_kruskal

import (
	"errors"
	"sort"

	"github.com/islandforge/islandmap/core"
)

// ErrInvalidGraph indicates MST computation requires an undirected, weighted
// graph. Returned when g is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected, weighted graph")

// ErrDisconnected indicates the graph has more than one vertex but no
// spanning tree covers them all.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{parent: make(map[string]string, len(ids)), rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		uf.parent[id] = id
	}

	return uf
}

func (uf *unionFind) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

func (uf *unionFind) union(a, b string) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}

	return true
}

// Kruskal computes a minimum spanning tree of g, returning the selected
// edges (sorted by weight, ties broken by edge ID) and the tree's total
// weight. Returns ErrInvalidGraph for a nil, directed, or unweighted graph,
// and ErrDisconnected if fewer than |V|-1 edges can be selected.
func Kruskal(g *core.Graph) (tree []*core.Edge, totalWeight int64, err error) {
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return nil, 0, nil
	}

	edges := append([]*core.Edge(nil), g.Edges()...)
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight < edges[j].Weight
		}

		return edges[i].ID < edges[j].ID
	})

	uf := newUnionFind(vertices)
	for _, e := range edges {
		if uf.union(e.From, e.To) {
			tree = append(tree, e)
			totalWeight += e.Weight
		}
	}

	if len(tree) != len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, totalWeight, nil
}
