// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid; cell (r,c) is vertex r*cols + c (row-major).
//   • For each cell emit Right (r,c+1) then Down (r+1,c) where they exist.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity: O(rows*cols).

package builder

import "github.com/katalvlaran/sparsebfs/matrix"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
func Grid(rows, cols int) Constructor {
	return func(c *matrix.Coordinates, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}

		grow(c, rows*cols)
		for r := 0; r < rows; r++ {
			for k := 0; k < cols; k++ {
				v := r*cols + k
				if k+1 < cols {
					cfg.arc(c, v, v+1)
				}
				if r+1 < rows {
					cfg.arc(c, v, v+cols)
				}
			}
		}

		return nil
	}
}
