// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible arc independently
//     with probability p.
//   - Directed (default): ordered pairs (i,j), i≠j.
//   - WithUndirected: unordered pairs {i,j} with i<j, emitted both ways.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order is i asc then j asc, one rng.Float64 per trial.

package builder

import "github.com/katalvlaran/sparsebfs/matrix"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples arcs over n vertices with
// independent probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(c *matrix.Coordinates, cfg builderConfig) error {
		// Stage 1 (Validate): sizes, probability, then RNG.
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		// Stage 2 (Execute): fixed trial order.
		keep := func() bool {
			if rng == nil {
				return p == MaxProbability
			}
			return rng.Float64() < p
		}

		grow(c, n)
		for i := 0; i < n; i++ {
			j0 := 0
			if cfg.undirected {
				j0 = i + 1
			}
			for j := j0; j < n; j++ {
				if i == j {
					continue
				}
				if keep() {
					cfg.arc(c, i, j)
				}
			}
		}

		return nil
	}
}
