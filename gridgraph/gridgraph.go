// Package gridgraph treats a rasterized 2D occupancy grid as a graph and
// labels its connected components. Map.RasterComponents uses it to turn the
// irregular hex mesh into a regular grid of land/water cells and find
// contiguous landmasses (including ones the hex mesh itself treats as a
// single Center-graph component but that read as separate islands once
// rasterized at a given cell size).
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
var offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// GridGraph is an immutable rectangular grid of land/water cells.
type GridGraph struct {
	Width, Height int
	Land          [][]bool
	Conn          Connectivity
}

// Option configures a GridGraph at construction time.
type Option func(*GridGraph)

// WithConn8 switches neighbor connectivity to 8-directional; the default is
// Conn4.
func WithConn8() Option {
	return func(g *GridGraph) { g.Conn = Conn8 }
}

// New validates land (a non-empty rectangular [row][col] grid) and builds a
// GridGraph over it.
func New(land [][]bool, opts ...Option) (*GridGraph, error) {
	if len(land) == 0 || len(land[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(land[0])
	for _, row := range land {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	g := &GridGraph{Width: width, Height: len(land), Land: land, Conn: Conn4}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *GridGraph) neighborOffsets() [][2]int {
	if g.Conn == Conn8 {
		return offsets8
	}

	return offsets4
}

// Components labels every maximal 4-or-8-connected group of land cells with
// a distinct integer ID (starting at 0, in row-major discovery order) and
// returns each component's member cells as [x,y] pairs. Water cells never
// appear in the result.
func (g *GridGraph) Components() map[int][][2]int {
	visited := make([][]bool, g.Height)
	for y := range visited {
		visited[y] = make([]bool, g.Width)
	}

	offsets := g.neighborOffsets()
	components := make(map[int][][2]int)
	nextID := 0

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.Land[y][x] || visited[y][x] {
				continue
			}

			id := nextID
			nextID++

			queue := [][2]int{{x, y}}
			visited[y][x] = true

			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				components[id] = append(components[id], cur)

				for _, off := range offsets {
					nx, ny := cur[0]+off[0], cur[1]+off[1]
					if nx < 0 || nx >= g.Width || ny < 0 || ny >= g.Height {
						continue
					}
					if !g.Land[ny][nx] || visited[ny][nx] {
						continue
					}
					visited[ny][nx] = true
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}
	}

	return components
}
