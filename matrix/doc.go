// SPDX-License-Identifier: MIT

// Package matrix implements boolean sparse matrices in compressed sparse
// column (CSC) form and the set-algebraic kernels that express graph
// traversal as linear algebra over the boolean semiring (OR as addition,
// AND as multiplication).
//
// What
//
//   - CSC: rows×cols boolean matrix with a column-pointer array of length
//     cols+1 and a row-index array of length nnz. Column j owns
//     rowidx[colptr[j]:colptr[j+1]].
//   - Build: counting-sort construction from unsorted coordinates in
//     O(nnz + cols), no comparison sort.
//   - Transpose, Copy, Dedup, Entries: structural helpers.
//   - Multiply (spgemm), Add (union), Diff (relative complement) and
//     MaskColumns, each driven by a dense bitset scratch accumulator.
//   - InitMultiSource and SpMV: frontier construction and the masked
//     "push" step used by the bfs package.
//
// Ordering
//
//	Row indices inside a column are NOT sorted by construction. Build keeps
//	the input order of equal-column entries, Add emits ascending rows, Diff
//	and MaskColumns keep the left operand's order, Multiply keeps discovery
//	order. Callers that need canonical columns use Dedup.
//
// Duplicates
//
//	Build keeps duplicate (row, col) pairs as repeated entries. Add, Multiply
//	and Dedup collapse them.
//
// Errors
//
//	Shape errors are returned as the package sentinels below, wrapped with
//	the operation name; the result is nil ("absent") whenever err != nil.
//
//   - ErrBadShape           negative dimensions.
//   - ErrLengthMismatch     row and column coordinate slices differ in length.
//   - ErrOutOfRange         a coordinate or source outside the shape.
//   - ErrDimensionMismatch  incompatible operand shapes.
//   - ErrNonSquare          a square matrix was required.
//   - ErrNilMatrix, ErrNilVector  nil operands.
//
// Matrices are immutable; every operation allocates its result and never
// touches its inputs.
package matrix
