// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every ordered pair (i,j), i≠j, i asc then j asc. The result is
//     already symmetric, so WithUndirected does not double it.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/sparsebfs/matrix"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n without self-loops.
func Complete(n int) Constructor {
	return func(c *matrix.Coordinates, _ builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}

		grow(c, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					c.Append(i, j)
				}
			}
		}

		return nil
	}
}
