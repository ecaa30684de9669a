// SPDX-License-Identifier: MIT
// Package: sparsebfs/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context as "<Method>: <detail>: %w".
//   • Validation priority: sizes, then probability, then RNG presence.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs a non-nil
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that Build could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf formats "<method>: <detail>: <err>" keeping err for errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
