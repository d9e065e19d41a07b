package matrix

import (
	"fmt"
	"math"

	"github.com/islandforge/islandmap/core"
)

const defaultWeight = 1.0

// Options configures BuildDenseAdjacency.
type Options struct {
	Weighted  bool
	AllowLoop bool
}

// Option configures Options.
type Option func(*Options)

// WithWeighted exports edge weights instead of a binary 0/1 adjacency.
func WithWeighted() Option { return func(o *Options) { o.Weighted = true } }

// WithLoops lets diagonal entries be populated from self-loop edges.
func WithLoops() Option { return func(o *Options) { o.AllowLoop = true } }

func lookupIndex(idx map[string]int, key string) (int, error) {
	if i, ok := idx[key]; ok {
		return i, nil
	}

	return 0, fmt.Errorf("matrix: vertex %q: %w", key, ErrUnknownVertex)
}

// BuildDenseAdjacency lays out vertices (in the given order) as rows/columns
// of a Dense matrix and populates it from edges. Parallel edges overwrite
// each other in the order edges is given (core.Graph.Edges returns them
// sorted by Edge.ID); the last edge between a pair wins.
func BuildDenseAdjacency(vertices []string, edges []*core.Edge, opts ...Option) (map[string]int, *Dense, error) {
	if len(vertices) == 0 {
		return nil, nil, ErrInvalidDimensions
	}

	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	idx := make(map[string]int, len(vertices))
	for i, id := range vertices {
		idx[id] = i
	}

	mat, err := NewDense(len(vertices), len(vertices))
	if err != nil {
		return nil, nil, fmt.Errorf("BuildDenseAdjacency: %w", err)
	}

	for _, e := range edges {
		src, err := lookupIndex(idx, e.From)
		if err != nil {
			return nil, nil, err
		}
		dst, err := lookupIndex(idx, e.To)
		if err != nil {
			return nil, nil, err
		}
		if src == dst && !o.AllowLoop {
			continue
		}

		w := defaultWeight
		if o.Weighted {
			w = float64(e.Weight)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, nil, ErrInvalidWeight
		}

		_ = mat.Set(src, dst, w)
		if !e.Directed {
			_ = mat.Set(dst, src, w)
		}
	}

	return idx, mat, nil
}
