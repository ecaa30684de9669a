// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the shape checks shared by the kernels.
//  - Return plain sentinel errors tagged with the validator name; kernels
//    add their own operation tag on top.
//
// Determinism & Performance:
//  - All checks are O(1) and allocate nothing on success.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/sparsebfs/bitset"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every matrix reference is non-nil.
func ValidateNotNil(ms ...*CSC) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b *CSC) error {
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Assumes a and b are not nil.
func ValidateMulCompatible(a, b *CSC) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d * %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare ensures m is square.
// Assumes m is not nil.
func ValidateSquare(m *CSC) error {
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.rows, m.cols, ErrNonSquare))
	}

	return nil
}

// ValidateVecLen ensures a vector has exactly n bits.
func ValidateVecLen(v *bitset.Bitset, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilVector)
	}
	if v.Len() != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", v.Len(), n, ErrDimensionMismatch))
	}

	return nil
}
