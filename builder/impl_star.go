// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// impl_star.go - implementation of Star(n) and Wheel(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; hub 0 emits 0 → i for every leaf i=1..n-1.
//   - Wheel: n ≥ 4; Star(n) spokes, then rim arcs i → i+1 over 1..n-1,
//     closing with n-1 → 1.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/sparsebfs/matrix"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
	hubVertex     = 0
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(c *matrix.Coordinates, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}

		grow(c, n)
		spokes(c, cfg, n)

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a hub plus a rim of n-1.
func Wheel(n int) Constructor {
	return func(c *matrix.Coordinates, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}

		grow(c, n)
		spokes(c, cfg, n)
		for i := 1; i < n-1; i++ {
			cfg.arc(c, i, i+1)
		}
		cfg.arc(c, n-1, 1)

		return nil
	}
}

func spokes(c *matrix.Coordinates, cfg builderConfig, n int) {
	for i := 1; i < n; i++ {
		cfg.arc(c, hubVertex, i)
	}
}
