// SPDX-License-Identifier: MIT
// Package: matrix
//
// builder.go - CSC construction from coordinates, transpose, copy, dedup.
//
// Contract:
//   - Build validates shape, lengths and every index before allocating output.
//   - Counting sort: count per column, prefix-sum into colptr, scatter with
//     per-column write cursors. O(nnz + cols) time, O(cols) extra space.
//   - Within-column order equals input order of equal-column entries.
//
// Determinism:
//   - Same coordinates in the same order always produce identical storage.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/sparsebfs/bitset"
)

const methodBuild = "Build"

// Build returns the rows×cols CSC matrix holding an entry (rowIdx[k], colIdx[k])
// for every k. nnz is len(rowIdx). Duplicate pairs are kept as repeated entries.
//
// Errors:
//   - ErrBadShape       if rows < 0 or cols < 0.
//   - ErrLengthMismatch if len(rowIdx) != len(colIdx).
//   - ErrOutOfRange     if any coordinate lies outside the shape.
//
// Complexity: O(nnz + cols).
func Build(rows, cols int, rowIdx, colIdx []int) (*CSC, error) {
	// Stage 1 (Validate): shape, lengths, coordinates.
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(methodBuild, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}
	if len(rowIdx) != len(colIdx) {
		return nil, matrixErrorf(methodBuild,
			fmt.Errorf("%d rows vs %d cols: %w", len(rowIdx), len(colIdx), ErrLengthMismatch))
	}
	for k := range rowIdx {
		if rowIdx[k] < 0 || rowIdx[k] >= rows || colIdx[k] < 0 || colIdx[k] >= cols {
			return nil, matrixErrorf(methodBuild,
				fmt.Errorf("entry %d (%d,%d) in %dx%d: %w", k, rowIdx[k], colIdx[k], rows, cols, ErrOutOfRange))
		}
	}

	// Stage 2 (Execute): counting-sort construction.
	return build(rows, cols, rowIdx, colIdx), nil
}

// build is the unchecked counting-sort pass shared by Build and Transpose.
func build(rows, cols int, rowIdx, colIdx []int) *CSC {
	nnz := len(rowIdx)
	colptr := make([]int, cols+1)
	cursor := make([]int, cols)

	// count entries per destination column
	for _, j := range colIdx {
		cursor[j]++
	}

	// prefix-sum counts into colptr; cursor becomes the write position
	nz := 0
	for j := 0; j < cols; j++ {
		colptr[j] = nz
		nz += cursor[j]
		cursor[j] = colptr[j]
	}
	colptr[cols] = nz

	// scatter each pair into its column slot
	rowidx := make([]int, nnz)
	for k, j := range colIdx {
		rowidx[cursor[j]] = rowIdx[k]
		cursor[j]++
	}

	return &CSC{rows: rows, cols: cols, colptr: colptr, rowidx: rowidx}
}

// Transpose returns the cols×rows transpose of m.
// Coordinates are re-emitted column by column with rows and columns swapped
// and fed through the same counting-sort pass, so every column of the result
// is sorted by row.
// Complexity: O(nnz + rows).
func (m *CSC) Transpose() *CSC {
	nnz := m.NNZ()
	rowIdx := make([]int, 0, nnz)
	colIdx := make([]int, 0, nnz)
	for j := 0; j < m.cols; j++ {
		for _, i := range m.column(j) {
			rowIdx = append(rowIdx, j)
			colIdx = append(colIdx, i)
		}
	}

	return build(m.cols, m.rows, rowIdx, colIdx)
}

// Copy returns a deep copy of m.
func (m *CSC) Copy() *CSC {
	return &CSC{rows: m.rows, cols: m.cols, colptr: m.ColPtr(), rowidx: m.RowIdx()}
}

// Dedup returns a copy of m whose columns hold sorted, unique row indices.
// It is the canonical form used by Equal.
// Complexity: O(nnz + cols*rows/64).
func (m *CSC) Dedup() *CSC {
	spa := bitset.New(m.rows)
	buf := newIndexBuffer(m.NNZ())
	colptr := make([]int, m.cols+1)

	for j := 0; j < m.cols; j++ {
		colptr[j] = buf.len()
		col := m.column(j)
		if len(col) == 0 {
			continue
		}
		spa.Reset()
		for _, i := range col {
			spa.Set(i)
		}
		buf.ensure(len(col))
		buf.commit(len(spa.AppendIndices(buf.tail())))
	}
	colptr[m.cols] = buf.len()

	return &CSC{rows: m.rows, cols: m.cols, colptr: colptr, rowidx: buf.shrink()}
}

// Equal reports whether m and other have the same shape and the same set of
// row indices in every column, ignoring order and duplicates.
func (m *CSC) Equal(other *CSC) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	a, b := m.Dedup(), other.Dedup()
	for j := 0; j <= m.cols; j++ {
		if a.colptr[j] != b.colptr[j] {
			return false
		}
	}
	for k, i := range a.rowidx {
		if b.rowidx[k] != i {
			return false
		}
	}

	return true
}
