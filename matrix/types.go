// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// CSC is an immutable boolean sparse matrix in compressed sparse column form.
//
// Invariants:
//   - len(colptr) == cols+1, colptr[0] == 0, colptr is non-decreasing.
//   - len(rowidx) == colptr[cols] == NNZ().
//   - every rowidx entry lies in [0, rows).
type CSC struct {
	rows, cols int
	colptr     []int // column offsets into rowidx
	rowidx     []int // row index of every stored entry, column by column
}

// newEmpty returns a rows×cols matrix with no entries.
func newEmpty(rows, cols int) *CSC {
	return &CSC{rows: rows, cols: cols, colptr: make([]int, cols+1), rowidx: []int{}}
}

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.cols }

// NNZ returns the number of stored entries, duplicates included.
func (m *CSC) NNZ() int { return m.colptr[m.cols] }

// ColumnLen returns the number of stored entries in column j.
// Panics if j is outside [0, Cols()).
func (m *CSC) ColumnLen(j int) int {
	return m.colptr[j+1] - m.colptr[j]
}

// Column returns a copy of the row indices stored in column j, in storage order.
// Panics if j is outside [0, Cols()).
func (m *CSC) Column(j int) []int {
	col := m.rowidx[m.colptr[j]:m.colptr[j+1]]
	out := make([]int, len(col))
	copy(out, col)

	return out
}

// column returns the backing slice of column j; callers must not modify it.
func (m *CSC) column(j int) []int {
	return m.rowidx[m.colptr[j]:m.colptr[j+1]]
}

// Has reports whether (i, j) is a stored entry.
// Complexity: O(ColumnLen(j)).
func (m *CSC) Has(i, j int) bool {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false
	}
	for _, r := range m.column(j) {
		if r == i {
			return true
		}
	}

	return false
}

// ColPtr returns a copy of the column pointer array.
func (m *CSC) ColPtr() []int {
	out := make([]int, len(m.colptr))
	copy(out, m.colptr)

	return out
}

// RowIdx returns a copy of the row index array.
func (m *CSC) RowIdx() []int {
	out := make([]int, len(m.rowidx))
	copy(out, m.rowidx)

	return out
}

// Entries returns the stored coordinates in column-major storage order.
func (m *CSC) Entries() (rows, cols []int) {
	nnz := m.NNZ()
	rows = make([]int, 0, nnz)
	cols = make([]int, 0, nnz)
	for j := 0; j < m.cols; j++ {
		for _, i := range m.column(j) {
			rows = append(rows, i)
			cols = append(cols, j)
		}
	}

	return rows, cols
}

// String renders the shape and every column, e.g.
//
//	CSC 3x3 nnz=3
//	  col 0: []
//	  col 1: [0]
//	  col 2: [1 0]
func (m *CSC) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSC %dx%d nnz=%d\n", m.rows, m.cols, m.NNZ())
	for j := 0; j < m.cols; j++ {
		fmt.Fprintf(&sb, "  col %d: %v\n", j, m.column(j))
	}

	return sb.String()
}
