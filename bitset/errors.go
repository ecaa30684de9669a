// SPDX-License-Identifier: MIT

package bitset

import "errors"

var (
	// ErrCapacityMismatch is returned when two bitsets of different capacity
	// are combined.
	ErrCapacityMismatch = errors.New("bitset: capacity mismatch")

	// ErrOutOfRange indicates a value that cannot be represented in the
	// target set, e.g. a roaring member >= n.
	ErrOutOfRange = errors.New("bitset: value out of range")
)
