// SPDX-License-Identifier: MIT

// Package sparsebfs computes breadth-first hop distances by expressing the
// traversal as sparse boolean linear algebra.
//
// Layout:
//
//	bitset/     - fixed-capacity bit vectors: frontier and visited sets
//	matrix/     - boolean CSC matrices: construction, transpose, add, diff,
//	              multiply and the masked matrix-vector push step
//	bfs/        - level-synchronous single-source and multi-source BFS
//	mtxio/      - coordinate file reader/writer, gzip and zstd aware
//	builder/    - deterministic synthetic graphs (path, grid, random, ...)
//	cmd/spbfs/  - command-line front end
//	examples/   - small runnable programs
//
// A graph with arcs u→v is loaded as the coordinate list (row=u, col=v),
// built into a CSC matrix and transposed, so that column u holds the
// out-neighbours of u. One BFS level is then a masked product
//
//	next = Aᵀ·frontier ∧ ¬visited
//
// evaluated by scanning one column per frontier vertex.
//
//	go install github.com/katalvlaran/sparsebfs/cmd/spbfs@latest
package sparsebfs
