// Package dfs implements depth-first traversal and cycle detection over a
// directed core.Graph, used to verify that river paths (corner ->
// downslope edges) never loop back on themselves.
package dfs

import (
	"errors"

	"github.com/islandforge/islandmap/core"
)

// ErrGraphNil is returned when g is nil.
var ErrGraphNil = errors.New("dfs: graph is nil")

// ErrCycleDetected is returned by DetectCycle when the graph contains a
// directed cycle.
var ErrCycleDetected = errors.New("dfs: cycle detected")

const (
	unvisited = iota
	visiting
	done
)

// DetectCycle runs a full-graph DFS over every vertex of g (a directed
// graph) and returns ErrCycleDetected if any vertex is reachable from
// itself via a directed path of length >= 1.
func DetectCycle(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	state := make(map[string]int, g.VertexCount())
	for _, v := range g.Vertices() {
		state[v] = unvisited
	}

	var visit func(id string) error
	visit = func(id string) error {
		state[id] = visiting

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return err
		}

		for _, n := range neighbors {
			switch state[n] {
			case visiting:
				return ErrCycleDetected
			case unvisited:
				if err := visit(n); err != nil {
					return err
				}
			}
		}

		state[id] = done

		return nil
	}

	for _, v := range g.Vertices() {
		if state[v] == unvisited {
			if err := visit(v); err != nil {
				return err
			}
		}
	}

	return nil
}
