// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// config.go - internal configuration, deterministic defaults and the arc
// sink shared by all constructors.
//
// Deterministic defaults:
//   • rng        = nil   (pure/deterministic unless seeded)
//   • undirected = false (arcs are emitted once, u→v)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/sparsebfs/matrix"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Emit the reverse arc v→u alongside every u→v (self-loops once).
	undirected bool
}

// newBuilderConfig applies options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// grow widens c to at least n vertices.
func grow(c *matrix.Coordinates, n int) {
	if n > c.Rows {
		c.Rows, c.Cols = n, n
	}
}

// arc appends u→v and, for undirected configs, v→u.
func (cfg builderConfig) arc(c *matrix.Coordinates, u, v int) {
	c.Append(u, v)
	if cfg.undirected && u != v {
		c.Append(v, u)
	}
}
