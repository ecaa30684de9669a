// SPDX-License-Identifier: MIT

package builder

// Probability domain accepted by RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateMin ensures got ≥ min, else ErrTooFewVertices tagged with method.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected as well.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
