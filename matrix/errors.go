package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates a non-square matrix where one was required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnknownVertex indicates an edge referenced a vertex absent from the index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex")

	// ErrInvalidWeight indicates a NaN or infinite edge weight.
	ErrInvalidWeight = errors.New("matrix: invalid edge weight")
)
