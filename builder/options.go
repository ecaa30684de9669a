// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs; constructors never do.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithUndirected makes every constructor emit both directions of each arc.
func WithUndirected() BuilderOption {
	return func(c *builderConfig) {
		c.undirected = true
	}
}
