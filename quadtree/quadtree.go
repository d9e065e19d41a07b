// Package quadtree implements an AABB-keyed, depth-bounded region quadtree
// for point-location queries over the generated mesh. Items whose region
// straddles a subdivision boundary are inserted into every leaf they
// intersect, so a point query never misses an item merely because it
// crossed a split line.
package quadtree

import (
	"errors"

	"github.com/islandforge/islandmap/vec2"
)

// ErrInvalidBounds indicates a non-positive half-extent on a boundary.
var ErrInvalidBounds = errors.New("quadtree: invalid bounds")

// ErrInvalidDepth indicates a non-positive max depth.
var ErrInvalidDepth = errors.New("quadtree: max depth must be > 0")

// AABB is an axis-aligned bounding box in center/half-extent form.
type AABB struct {
	Center vec2.V
	Half   vec2.V
}

// Contains reports whether p lies within the box, inclusive of its edges.
func (b AABB) Contains(p vec2.V) bool {
	minP := b.Center.Sub(b.Half)
	maxP := b.Center.Add(b.Half)

	return p.X >= minP.X && p.X <= maxP.X && p.Y >= minP.Y && p.Y <= maxP.Y
}

// Intersects reports whether b and o overlap.
func (b AABB) Intersects(o AABB) bool {
	dx := absF(b.Center.X - o.Center.X)
	dy := absF(b.Center.Y - o.Center.Y)

	return dx <= b.Half.X+o.Half.X && dy <= b.Half.Y+o.Half.Y
}

func absF(f float64) float64 {
	if f < 0 {
		return -f
	}

	return f
}

type entry[T any] struct {
	item   T
	region AABB
}

// Tree is a region quadtree over items of type T, each keyed by an AABB.
type Tree[T any] struct {
	boundary AABB
	depth    int
	maxDepth int

	divided bool
	nw, ne, se, sw *Tree[T]

	entries []entry[T]
}

// New builds an empty tree over boundary, subdividing at most maxDepth
// levels deep. Returns ErrInvalidBounds or ErrInvalidDepth on bad input.
func New[T any](boundary AABB, maxDepth int) (*Tree[T], error) {
	if boundary.Half.X <= 0 || boundary.Half.Y <= 0 {
		return nil, ErrInvalidBounds
	}
	if maxDepth <= 0 {
		return nil, ErrInvalidDepth
	}

	return newNode[T](boundary, 0, maxDepth), nil
}

func newNode[T any](boundary AABB, depth, maxDepth int) *Tree[T] {
	return &Tree[T]{boundary: boundary, depth: depth, maxDepth: maxDepth}
}

// Insert places item, keyed by region, into every leaf its region
// intersects. Returns false if region does not intersect the tree's
// boundary at all.
func (t *Tree[T]) Insert(item T, region AABB) bool {
	if !t.boundary.Intersects(region) {
		return false
	}

	if t.depth == t.maxDepth {
		t.entries = append(t.entries, entry[T]{item: item, region: region})

		return true
	}

	if !t.divided {
		t.subdivide()
	}

	inserted := false
	for _, child := range t.children() {
		if child.boundary.Intersects(region) {
			if child.Insert(item, region) {
				inserted = true
			}
		}
	}

	return inserted
}

// Query returns every item whose region contains p, found by descending
// into the single leaf whose boundary contains p.
func (t *Tree[T]) Query(p vec2.V) []T {
	node := t
	for node.divided {
		next := node.childContaining(p)
		if next == nil {
			return nil
		}
		node = next
	}

	var out []T
	for _, e := range node.entries {
		if e.region.Contains(p) {
			out = append(out, e.item)
		}
	}

	return out
}

func (t *Tree[T]) childContaining(p vec2.V) *Tree[T] {
	for _, child := range t.children() {
		if child.boundary.Contains(p) {
			return child
		}
	}

	return nil
}

func (t *Tree[T]) children() [4]*Tree[T] {
	return [4]*Tree[T]{t.nw, t.ne, t.se, t.sw}
}

func (t *Tree[T]) subdivide() {
	t.divided = true

	half := vec2.V{X: t.boundary.Half.X / 2, Y: t.boundary.Half.Y / 2}
	center := t.boundary.Center

	nwCenter := vec2.V{X: center.X - half.X, Y: center.Y - half.Y}
	neCenter := vec2.V{X: center.X + half.X, Y: center.Y - half.Y}
	seCenter := vec2.V{X: center.X + half.X, Y: center.Y + half.Y}
	swCenter := vec2.V{X: center.X - half.X, Y: center.Y + half.Y}

	t.nw = newNode[T](AABB{Center: nwCenter, Half: half}, t.depth+1, t.maxDepth)
	t.ne = newNode[T](AABB{Center: neCenter, Half: half}, t.depth+1, t.maxDepth)
	t.se = newNode[T](AABB{Center: seCenter, Half: half}, t.depth+1, t.maxDepth)
	t.sw = newNode[T](AABB{Center: swCenter, Half: half}, t.depth+1, t.maxDepth)
}
