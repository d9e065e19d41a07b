package islandmap

import "errors"

// ErrInvalidDimensions is returned by New when width, height, or point
// spread is non-positive.
var ErrInvalidDimensions = errors.New("islandmap: width, height and point spread must be > 0")

// ErrNotGenerated is returned by any query method called before Generate.
var ErrNotGenerated = errors.New("islandmap: Generate has not been called")

// ErrCenterNotFound is returned by CenterAt when no populated quadtree leaf
// covers the queried point.
var ErrCenterNotFound = errors.New("islandmap: no center found at point")

// ErrUnknownIndex is returned by any method given a Center/Corner index
// outside the generated mesh's range.
var ErrUnknownIndex = errors.New("islandmap: index out of range")
