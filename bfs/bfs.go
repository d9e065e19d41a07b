// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted hop distances and parent links. It ignores edge weights, which
// is exactly what Map.DistanceToCoast needs: hop-count-from-coast, not
// terrain-weighted distance.
package bfs

import (
	"errors"

	"github.com/islandforge/islandmap/core"
)

// ErrGraphNil is returned when g is nil.
var ErrGraphNil = errors.New("bfs: graph is nil")

// ErrStartVertexNotFound is returned when a start vertex is missing from g.
var ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

// Result holds the outcome of a (possibly multi-source) BFS: hop distance
// from the nearest source, and the parent each vertex was first reached
// from (empty string for a source).
type Result struct {
	Distance map[string]int
	Parent   map[string]string
}

// BFS runs breadth-first search from a single source.
func BFS(g *core.Graph, startID string) (*Result, error) {
	return MultiSource(g, []string{startID})
}

// MultiSource runs breadth-first search simultaneously from every vertex in
// starts, labelling each reachable vertex with its hop distance to the
// nearest source. Returns ErrGraphNil or ErrStartVertexNotFound for invalid
// input.
func MultiSource(g *core.Graph, starts []string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	res := &Result{Distance: make(map[string]int), Parent: make(map[string]string)}

	queue := make([]string, 0, len(starts))
	for _, s := range starts {
		if !g.HasVertex(s) {
			return nil, ErrStartVertexNotFound
		}
		if _, seen := res.Distance[s]; seen {
			continue
		}
		res.Distance[s] = 0
		res.Parent[s] = ""
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}

		for _, n := range neighbors {
			if _, seen := res.Distance[n]; seen {
				continue
			}
			res.Distance[n] = res.Distance[id] + 1
			res.Parent[n] = id
			queue = append(queue, n)
		}
	}

	return res, nil
}
