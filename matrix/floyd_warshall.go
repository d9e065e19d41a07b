package matrix

import (
	"fmt"
	"math"
)

// FloydWarshall runs all-pairs shortest paths in place over m. Cells with no
// direct edge must already hold +Inf (see ApplyMetricClosure); zero means a
// real zero-cost edge, not "no path".
func FloydWarshall(m *Dense) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("FloydWarshall: non-square %dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}
	n := m.Rows()

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				dik, err := m.At(i, k)
				if err != nil {
					return fmt.Errorf("FloydWarshall: At(%d,%d): %w", i, k, err)
				}
				dkj, err := m.At(k, j)
				if err != nil {
					return fmt.Errorf("FloydWarshall: At(%d,%d): %w", k, j, err)
				}
				dij, err := m.At(i, j)
				if err != nil {
					return fmt.Errorf("FloydWarshall: At(%d,%d): %w", i, j, err)
				}
				if dik+dkj < dij {
					if err := m.Set(i, j, dik+dkj); err != nil {
						return fmt.Errorf("FloydWarshall: Set(%d,%d): %w", i, j, err)
					}
				}
			}
		}
	}

	return nil
}

// ApplyMetricClosure replaces zero off-diagonal cells (no recorded edge) with
// +Inf and runs FloydWarshall, turning a raw adjacency matrix into an
// all-pairs distance table.
func ApplyMetricClosure(m *Dense) error {
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return fmt.Errorf("ApplyMetricClosure: non-square %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}

	inf := math.Inf(1)
	for u := 0; u < rows; u++ {
		for v := 0; v < cols; v++ {
			if u == v {
				continue
			}
			val, _ := m.At(u, v)
			if val == 0 {
				_ = m.Set(u, v, inf)
			}
		}
	}

	return FloydWarshall(m)
}
