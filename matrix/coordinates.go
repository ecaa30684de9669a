// SPDX-License-Identifier: MIT

package matrix

// Coordinates is an unsorted 0-based coordinate (triplet) list describing a
// Rows×Cols boolean matrix: entry k is (RowIdx[k], ColIdx[k]).
// It is the hand-off format between readers, generators and Build.
type Coordinates struct {
	Rows, Cols int
	RowIdx     []int
	ColIdx     []int
}

// NewCoordinates returns an empty list for a rows×cols shape with room for
// nnz entries.
func NewCoordinates(rows, cols, nnz int) *Coordinates {
	return &Coordinates{
		Rows:   rows,
		Cols:   cols,
		RowIdx: make([]int, 0, nnz),
		ColIdx: make([]int, 0, nnz),
	}
}

// Append adds the entry (i, j). Bounds are checked by Build.
func (c *Coordinates) Append(i, j int) {
	c.RowIdx = append(c.RowIdx, i)
	c.ColIdx = append(c.ColIdx, j)
}

// NNZ returns the number of entries, duplicates included.
func (c *Coordinates) NNZ() int {
	return len(c.RowIdx)
}

// Build returns the CSC matrix of c; see Build for errors.
func (c *Coordinates) Build() (*CSC, error) {
	return Build(c.Rows, c.Cols, c.RowIdx, c.ColIdx)
}
