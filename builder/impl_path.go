// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits arcs (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/sparsebfs/matrix"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(c *matrix.Coordinates, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}

		grow(c, n)
		for i := 1; i < n; i++ {
			cfg.arc(c, i-1, i)
		}

		return nil
	}
}
