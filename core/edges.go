package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates an edge from->to with the given weight, auto-creating
// endpoint vertices as needed, and returns the new edge's ID.
//
// Validation order: weight vs. Weighted(), loop vs. Looped(), mixed-mode
// opts vs. MixedEdges(), then multi-edge vs. Multigraph().
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.RLock()
	weighted, allowLoops, allowMixed := g.weighted, g.allowLoops, g.allowMixed
	g.mu.RUnlock()

	if weight != 0 && !weighted {
		return "", ErrBadWeight
	}
	if from == to && !allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	if !g.allowMulti {
		for eid := range g.adjacency[from][to] {
			if existing := g.edges[eid]; existing != nil && existing.Directed == e.Directed {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][e.ID] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][e.ID] = struct{}{}
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	removeAdjacency(g, e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether any edge connects from to to in either orientation
// recorded by the adjacency index.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge looks up an edge by ID.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges, sorted by ID.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasDirectedEdges reports whether any edge in the graph is directed, useful
// for mixed-mode graphs where this can't be read off the construction flag.
func (g *Graph) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}

// FilterEdges removes every edge for which pred returns false.
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for eid, e := range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
}

// nextEdgeID allocates the next textual edge ID. Caller must hold g.mu.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)

	return fmt.Sprintf("%s%d", edgeIDPrefix, n)
}
