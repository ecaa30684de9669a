// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings need loops or parallel arcs.
//   - Emits i → (i+1) mod n for i=0..n-1.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/sparsebfs/matrix"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(c *matrix.Coordinates, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}

		grow(c, n)
		for i := 0; i < n; i++ {
			cfg.arc(c, i, (i+1)%n)
		}

		return nil
	}
}
