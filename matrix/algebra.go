// SPDX-License-Identifier: MIT
// Package: matrix
//
// algebra.go - boolean semiring kernels: Multiply (spgemm), Add, Diff,
// MaskColumns.
//
// Every kernel walks the output column by column and uses one dense bitset
// of size Rows() as its scratch accumulator. The accumulator is owned by the
// call, reset per column, and never escapes.

package matrix

import (
	"github.com/katalvlaran/sparsebfs/bitset"
)

const (
	methodMultiply    = "Multiply"
	methodAdd         = "Add"
	methodDiff        = "Diff"
	methodMaskColumns = "MaskColumns"
)

// Multiply returns the boolean product C = A·B.
// C[i,j] is set iff some k has A[i,k] and B[k,j]. Column j of C is the union
// of the columns A[:,k] over the entries k of B[:,j], deduplicated by a
// sparse accumulator; rows appear in discovery order.
//
// The output buffer starts at nnz(A)+nnz(B) entries. Before each column it
// is grown to hold Rows(A) more, the most a single column can add, and it is
// shrunk to the exact nnz at the end.
//
// Returns ErrNilMatrix or ErrDimensionMismatch (A.Cols() != B.Rows()).
// Complexity: O(flops + Cols(B)·Rows(A)/64) time, O(nnz(C) + Rows(A)) space.
func Multiply(a, b *CSC) (*CSC, error) {
	// Stage 1 (Validate)
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(methodMultiply, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(methodMultiply, err)
	}

	// Stage 2 (Prepare)
	m, n := a.rows, b.cols
	colptr := make([]int, n+1)
	buf := newIndexBuffer(a.NNZ() + b.NNZ())
	spa := bitset.New(m)

	// Stage 3 (Execute): one accumulator pass per output column.
	for j := 0; j < n; j++ {
		colptr[j] = buf.len()
		bcol := b.column(j)
		if len(bcol) == 0 {
			continue
		}
		buf.ensure(m)
		spa.Reset()
		for _, k := range bcol {
			for _, i := range a.column(k) {
				if !spa.Test(i) {
					spa.Set(i)
					buf.push(i)
				}
			}
		}
	}
	colptr[n] = buf.len()

	// Stage 4 (Finalize): exact-size row index array.
	return &CSC{rows: m, cols: n, colptr: colptr, rowidx: buf.shrink()}, nil
}

// Add returns the boolean union C = A ∨ B.
// Each output column lists its rows in ascending order without duplicates.
// Returns ErrNilMatrix or ErrDimensionMismatch (shapes differ).
// Complexity: O(nnz(A) + nnz(B) + Cols·Rows/64).
func Add(a, b *CSC) (*CSC, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(methodAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(methodAdd, err)
	}

	m, n := a.rows, a.cols
	colptr := make([]int, n+1)
	buf := newIndexBuffer(a.NNZ() + b.NNZ())
	spa := bitset.New(m)

	for j := 0; j < n; j++ {
		colptr[j] = buf.len()
		acol, bcol := a.column(j), b.column(j)
		if len(acol)+len(bcol) == 0 {
			continue
		}
		spa.Reset()
		for _, i := range acol {
			spa.Set(i)
		}
		for _, i := range bcol {
			spa.Set(i)
		}
		// distinct rows never exceed len(acol)+len(bcol), so AppendIndices
		// writes straight into the reserved tail
		buf.ensure(len(acol) + len(bcol))
		buf.commit(len(spa.AppendIndices(buf.tail())))
	}
	colptr[n] = buf.len()

	return &CSC{rows: m, cols: n, colptr: colptr, rowidx: buf.shrink()}, nil
}

// Diff returns the relative complement C = A ∧ ¬B: the entries of A whose
// (row, col) is absent from B. Rows keep A's order within each column,
// duplicates of A included. A and B may be the same matrix.
// Returns ErrNilMatrix or ErrDimensionMismatch (shapes differ).
// Complexity: O(nnz(A) + nnz(B)).
func Diff(a, b *CSC) (*CSC, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(methodDiff, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(methodDiff, err)
	}

	m, n := a.rows, a.cols
	colptr := make([]int, n+1)
	buf := newIndexBuffer(a.NNZ())
	spa := bitset.New(m)

	for j := 0; j < n; j++ {
		colptr[j] = buf.len()
		bcol := b.column(j)
		for _, i := range bcol {
			spa.Set(i)
		}
		acol := a.column(j)
		buf.ensure(len(acol))
		for _, i := range acol {
			if !spa.Test(i) {
				buf.push(i)
			}
		}
		// spa holds only B's marks; unsetting them leaves it all-zero
		for _, i := range bcol {
			spa.Unset(i)
		}
	}
	colptr[n] = buf.len()

	return &CSC{rows: m, cols: n, colptr: colptr, rowidx: buf.shrink()}, nil
}

// MaskColumns returns A with every row set in mask removed from every
// column, keeping A's order. It is Diff against a matrix whose columns all
// equal mask, without materializing that matrix.
// Returns ErrNilMatrix, ErrNilVector or ErrDimensionMismatch
// (mask.Len() != A.Rows()).
// Complexity: O(nnz(A)).
func MaskColumns(a *CSC, mask *bitset.Bitset) (*CSC, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(methodMaskColumns, err)
	}
	if err := ValidateVecLen(mask, a.rows); err != nil {
		return nil, matrixErrorf(methodMaskColumns, err)
	}

	colptr := make([]int, a.cols+1)
	buf := newIndexBuffer(a.NNZ())
	for j := 0; j < a.cols; j++ {
		colptr[j] = buf.len()
		for _, i := range a.column(j) {
			if !mask.Test(i) {
				buf.push(i)
			}
		}
	}
	colptr[a.cols] = buf.len()

	return &CSC{rows: a.rows, cols: a.cols, colptr: colptr, rowidx: buf.shrink()}, nil
}
