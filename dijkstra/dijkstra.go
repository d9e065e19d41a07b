// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// weighted core.Graph, used by Map.RouteBetween to find the cheapest
// land route between two Centers.
//
// Complexity: O((V + E) log V) time, O(V + E) space, using a binary heap
// with the standard lazy decrease-key strategy (stale heap entries are
// skipped on pop rather than removed in place).
package dijkstra

import (
	"container/heap"
	"errors"
	"math"

	"github.com/islandforge/islandmap/core"
)

// Sentinel errors returned by Dijkstra.
var (
	ErrEmptySource     = errors.New("dijkstra: source vertex ID is empty")
	ErrNilGraph        = errors.New("dijkstra: graph is nil")
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")
	ErrVertexNotFound  = errors.New("dijkstra: source vertex not found in graph")
	ErrNegativeWeight  = errors.New("dijkstra: negative edge weight encountered")
)

type config struct {
	source string
	target string
}

// Option configures a Dijkstra run.
type Option func(*config)

// Source sets the required starting vertex ID.
func Source(id string) Option {
	return func(c *config) { c.source = id }
}

// Target, if set, stops the search as soon as target is popped off the
// frontier instead of exploring the full graph.
func Target(id string) Option {
	return func(c *config) { c.target = id }
}

type heapItem struct {
	id   string
	dist int64
}

type priorityQueue []heapItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(heapItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Dijkstra computes shortest distances from the Source option to every
// reachable vertex of g, plus a predecessor map for path reconstruction.
// prev[v] == u means the shortest path to v passes through u; prev[v] == ""
// for the source itself or for an unreachable vertex.
func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.source) {
		return nil, nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, ErrNegativeWeight
		}
	}

	dist = make(map[string]int64)
	prev = make(map[string]string)
	for _, v := range g.Vertices() {
		dist[v] = math.MaxInt64
	}
	dist[cfg.source] = 0

	pq := &priorityQueue{{id: cfg.source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(heapItem)
		if top.dist > dist[top.id] {
			continue
		}
		if cfg.target != "" && top.id == cfg.target {
			break
		}

		edges, nerr := g.Neighbors(top.id)
		if nerr != nil {
			return nil, nil, nerr
		}

		for _, e := range edges {
			next := e.To
			if next == top.id {
				next = e.From
			}

			cand := dist[top.id] + e.Weight
			if cand < dist[next] {
				dist[next] = cand
				prev[next] = top.id
				heap.Push(pq, heapItem{id: next, dist: cand})
			}
		}
	}

	return dist, prev, nil
}

// Path reconstructs the shortest path from source to target using prev, as
// returned by Dijkstra. Returns (nil, false) if target is unreachable.
func Path(prev map[string]string, source, target string) ([]string, bool) {
	if source == target {
		return []string{source}, true
	}

	var rev []string
	cur := target
	for {
		p, ok := prev[cur]
		if !ok {
			return nil, false
		}
		rev = append(rev, cur)
		cur = p
		if cur == source {
			break
		}
	}
	rev = append(rev, source)

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, true
}
