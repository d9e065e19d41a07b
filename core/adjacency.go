package core

import "sort"

// Neighbors lists every edge touching id: directed edges only where
// e.From==id, undirected edges from either direction (loops once). Sorted by
// Edge.ID for deterministic iteration.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			if e := g.edges[eid]; !(e.Directed && e.From != id) {
				out = append(out, e)
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique, sorted vertex IDs adjacent to id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		other := e.To
		if e.From != id {
			other = e.From
		}
		seen[other] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}

	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to its incident
// edge IDs, each slice sorted by Edge.ID. Map key order is unspecified.
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	result := make(map[string][]string, len(g.adjacency))
	for from, toMap := range g.adjacency {
		var ids []string
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				ids = append(ids, eid)
			}
		}

		sort.Strings(ids)
		result[from] = ids
	}

	return result
}

// ensureAdjacency guarantees the (from,to) nested maps exist. Caller must
// hold g.mu for writing.
func ensureAdjacency(g *Graph, from, to string) {
	toMap, ok := g.adjacency[from]
	if !ok {
		toMap = make(map[string]map[string]struct{})
		g.adjacency[from] = toMap
	}

	if toMap[to] == nil {
		toMap[to] = make(map[string]struct{})
	}
}

// removeAdjacency deletes e.ID from from->to, and to->from when e is
// undirected and not a self-loop. Caller must hold g.mu for writing.
func removeAdjacency(g *Graph, e *Edge) {
	pruneEdgeID(g, e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		pruneEdgeID(g, e.To, e.From, e.ID)
	}
}

// pruneEdgeID removes eid from adjacency[from][to], dropping the inner
// bucket if it becomes empty. Caller must hold g.mu for writing.
func pruneEdgeID(g *Graph, from, to, eid string) {
	m := g.adjacency[from][to]
	if m == nil {
		return
	}

	delete(m, eid)
	if len(m) == 0 {
		delete(g.adjacency[from], to)
	}
}

// cleanupAdjacency prunes empty nested buckets. Caller must hold g.mu for
// writing.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacency {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}

		if len(toMap) == 0 {
			delete(g.adjacency, u)
		}
	}
}
