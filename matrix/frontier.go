// SPDX-License-Identifier: MIT
// Package: matrix
//
// frontier.go - frontier construction and the masked matrix-vector product
// that drives level-synchronous traversal.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/sparsebfs/bitset"
)

const (
	methodInitMultiSource = "InitMultiSource"
	methodSpMV            = "SpMV"
)

// InitMultiSource returns the Rows(graph)×len(sources) frontier matrix whose
// column k holds the single row sources[k]. It is the starting frontier of a
// multi-source BFS, one column per source.
//
// Errors:
//   - ErrNilMatrix  if graph is nil.
//   - ErrNonSquare  if graph is not square.
//   - ErrOutOfRange if a source lies outside [0, Rows(graph)).
func InitMultiSource(graph *CSC, sources []int) (*CSC, error) {
	if err := ValidateNotNil(graph); err != nil {
		return nil, matrixErrorf(methodInitMultiSource, err)
	}
	if err := ValidateSquare(graph); err != nil {
		return nil, matrixErrorf(methodInitMultiSource, err)
	}

	k := len(sources)
	colptr := make([]int, k+1)
	rowidx := make([]int, k)
	for c, s := range sources {
		if s < 0 || s >= graph.rows {
			return nil, matrixErrorf(methodInitMultiSource,
				fmt.Errorf("source %d = %d not in [0,%d): %w", c, s, graph.rows, ErrOutOfRange))
		}
		colptr[c] = c
		rowidx[c] = s
	}
	colptr[k] = k

	return &CSC{rows: graph.rows, cols: k, colptr: colptr, rowidx: rowidx}, nil
}

// SpMV returns y = A·x over the boolean semiring, masked by mask.
// For every set bit j of x, every row i stored in column j of A is set in y,
// unless mask is non-nil and already has bit i set. With A oriented so that
// column j lists the out-neighbours of j, this is one BFS "push" step:
// the union of the frontier's neighbour sets minus the visited set.
//
// Errors:
//   - ErrNilMatrix, ErrNilVector for nil operands.
//   - ErrDimensionMismatch if x.Len() != Cols(A), or mask != nil and
//     mask.Len() != Rows(A).
//
// Complexity: O(Cols/64 + Σ_{j∈x} ColumnLen(j)).
func SpMV(a *CSC, x *bitset.Bitset, mask *bitset.Bitset) (*bitset.Bitset, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(methodSpMV, err)
	}
	if err := ValidateVecLen(x, a.cols); err != nil {
		return nil, matrixErrorf(methodSpMV, err)
	}
	if mask != nil {
		if err := ValidateVecLen(mask, a.rows); err != nil {
			return nil, matrixErrorf(methodSpMV, err)
		}
	}

	y := bitset.New(a.rows)
	for j, ok := x.NextSet(-1); ok; j, ok = x.NextSet(j) {
		for _, i := range a.column(j) {
			if mask == nil || !mask.Test(i) {
				y.Set(i)
			}
		}
	}

	return y, nil
}
