// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// api.go - public entry-point and constructor index.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - Factories are declared in impl_*.go, one topology per file.
//   - Same inputs/options/seed and constructor order ⇒ identical coordinates.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsebfs/matrix"
)

// Constructor appends one topology to c using the resolved builderConfig.
// Constructors MUST validate parameters before touching c, widen c to the
// vertex count they use, and return sentinel errors instead of panicking.
type Constructor func(c *matrix.Coordinates, cfg builderConfig) error

// Build resolves bopts and applies all constructors in order to a single
// square coordinate list. Any constructor error is wrapped as
// "Build: %w" and returned immediately with a nil result.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func Build(bopts []BuilderOption, cons ...Constructor) (*matrix.Coordinates, error) {
	cfg := newBuilderConfig(bopts...)
	c := matrix.NewCoordinates(0, 0, 0)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return c, nil
}

// Topology factories - implemented in impl_*.go
//
//   Path(n)            0→1→…→n-1                      n ≥ 2
//   Cycle(n)           Path(n) plus n-1→0             n ≥ 3
//   Star(n)            hub 0 → leaves 1..n-1          n ≥ 2
//   Wheel(n)           Star(n) plus rim cycle 1..n-1  n ≥ 4
//   Grid(r, c)         row-major, right and down arcs r, c ≥ 1
//   Complete(n)        every ordered pair i≠j         n ≥ 1
//   RandomSparse(n, p) each admissible arc with prob p n ≥ 1
