// Package flow computes maximum flow over a directed, weighted core.Graph
// using the Edmonds-Karp algorithm (BFS augmenting paths). Edge weights are
// read as capacities. Map.RiverDischargeCapacity uses it to find how much
// water an inland river source can ultimately push to the ocean sink given
// the carrying capacity of every downstream river edge.
package flow

import (
	"context"
	"errors"
	"math"

	"github.com/islandforge/islandmap/core"
)

// ErrSourceNotFound is returned when source is missing from the graph.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when sink is missing from the graph.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrNegativeCapacity is returned when an edge has negative weight.
var ErrNegativeCapacity = errors.New("flow: negative edge capacity")

// EdmondsKarp computes the maximum flow from source to sink in g, treating
// each edge's Weight as its capacity. Parallel edges between the same pair
// have their capacities summed. Complexity: O(V*E^2).
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string) (maxFlow int64, err error) {
	if g == nil {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}

	residual := make(map[string]map[string]int64)
	addCap := func(from, to string, cap int64) {
		if residual[from] == nil {
			residual[from] = make(map[string]int64)
		}
		residual[from][to] += cap
		if residual[to] == nil {
			residual[to] = make(map[string]int64)
		}
		if _, ok := residual[to][from]; !ok {
			residual[to][from] = 0
		}
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return 0, ErrNegativeCapacity
		}
		addCap(e.From, e.To, e.Weight)
		if !e.Directed {
			addCap(e.To, e.From, e.Weight)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return maxFlow, ctx.Err()
		default:
		}

		parent, found := bfsAugmentingPath(residual, source, sink)
		if !found {
			break
		}

		bottleneck := int64(math.MaxInt64)
		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			if c := residual[u][v]; c < bottleneck {
				bottleneck = c
			}
		}

		for v := sink; v != source; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}

		maxFlow += bottleneck
	}

	return maxFlow, nil
}

func bfsAugmentingPath(residual map[string]map[string]int64, source, sink string) (map[string]string, bool) {
	parent := map[string]string{source: source}
	queue := []string{source}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if u == sink {
			return parent, true
		}

		for v, cap := range residual[u] {
			if cap <= 0 {
				continue
			}
			if _, seen := parent[v]; seen {
				continue
			}
			parent[v] = u
			queue = append(queue, v)
		}
	}

	return parent, false
}
