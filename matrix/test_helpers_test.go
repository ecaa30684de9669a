// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures for the CSC kernels.
//   - Order-insensitive views of columns so tests never depend on the
//     unsorted within-column layout produced by Build.

package matrix_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebfs/matrix"
)

// mustBuild builds a CSC or fails the test immediately.
func mustBuild(t testing.TB, rows, cols int, rowIdx, colIdx []int) *matrix.CSC {
	t.Helper()
	m, err := matrix.Build(rows, cols, rowIdx, colIdx)
	require.NoError(t, err)

	return m
}

// randomCoords draws nnz coordinates uniformly from a rows×cols shape,
// duplicates allowed.
func randomCoords(rng *rand.Rand, rows, cols, nnz int) (ri, ci []int) {
	ri = make([]int, nnz)
	ci = make([]int, nnz)
	for k := 0; k < nnz; k++ {
		ri[k] = rng.Intn(rows)
		ci[k] = rng.Intn(cols)
	}

	return ri, ci
}

// columnSets returns, per column, the sorted unique row indices.
func columnSets(m *matrix.CSC) [][]int {
	out := make([][]int, m.Cols())
	for j := range out {
		seen := map[int]bool{}
		set := []int{}
		for _, i := range m.Column(j) {
			if !seen[i] {
				seen[i] = true
				set = append(set, i)
			}
		}
		sort.Ints(set)
		out[j] = set
	}

	return out
}

// entryMultiset counts every stored (row, col) pair, duplicates included.
func entryMultiset(m *matrix.CSC) map[[2]int]int {
	out := map[[2]int]int{}
	rows, cols := m.Entries()
	for k := range rows {
		out[[2]int{rows[k], cols[k]}]++
	}

	return out
}

// requireWellFormed checks the CSC structural invariants.
func requireWellFormed(t testing.TB, m *matrix.CSC) {
	t.Helper()
	colptr := m.ColPtr()
	require.Len(t, colptr, m.Cols()+1)
	require.Equal(t, 0, colptr[0])
	for j := 0; j < m.Cols(); j++ {
		require.LessOrEqual(t, colptr[j], colptr[j+1], "colptr must be non-decreasing at %d", j)
	}
	require.Equal(t, m.NNZ(), colptr[m.Cols()])
	rowidx := m.RowIdx()
	require.Len(t, rowidx, m.NNZ())
	for _, i := range rowidx {
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, m.Rows())
	}
}

// denseProduct is a reference boolean product over explicit column sets.
func denseProduct(a, b *matrix.CSC) [][]int {
	acols := columnSets(a)
	out := make([][]int, b.Cols())
	for j := 0; j < b.Cols(); j++ {
		hit := make([]bool, a.Rows())
		for _, k := range b.Column(j) {
			for _, i := range acols[k] {
				hit[i] = true
			}
		}
		set := []int{}
		for i, ok := range hit {
			if ok {
				set = append(set, i)
			}
		}
		out[j] = set
	}

	return out
}
