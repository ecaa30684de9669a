// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels wrapped with the operation tag via
// matrixErrorf; callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row, column or source index outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrLengthMismatch indicates coordinate slices of different length.
	ErrLengthMismatch = errors.New("matrix: coordinate length mismatch")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *CSC was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates that a nil input vector was passed to SpMV.
	ErrNilVector = errors.New("matrix: nil vector")
)

// matrixErrorf wraps err with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
