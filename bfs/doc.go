// SPDX-License-Identifier: MIT

// Package bfs computes unweighted hop distances by level-synchronous
// breadth-first search expressed as sparse linear algebra over the boolean
// semiring.
//
// What
//
//   - Levels(at, source) runs single-source BFS. Each level is one masked
//     matrix-vector product: next = at·frontier masked by visited.
//   - MultiSource(at, sources) runs one BFS per source at once. The frontier
//     is an n×k matrix; each level is next = (at·F) ∧ ¬V, then V = V ∨ next.
//   - FromCoordinates builds the traversal matrix from a 0-based edge list.
//
// The matrix passed to Levels and MultiSource is oriented for pushing:
// column j lists the out-neighbours of vertex j. The coordinate adjacency of
// a graph file (entry (u, v) for edge u→v) stores in-neighbours per column,
// so callers pass its Transpose.
//
// Invariant
//
//	Level[i] is the length in edges of the shortest directed path from the
//	source to i, or Unreached (-1) when no path exists. Every level advances
//	exactly one hop and the visited mask stops any vertex from being
//	stamped twice.
//
// Complexity (V = vertices, E = entries)
//
//   - Time:   O(E + D·V/64) for D levels.
//   - Memory: O(V) bits for frontier and visited, O(V) ints for Level.
//
// Usage
//
//	at, err := bfs.FromCoordinates(n, from, to)
//	res, err := bfs.Levels(at, 0,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnLevel(func(level int, frontier *bitset.Bitset) error { return nil }),
//	    bfs.WithLogger(logger),
//	)
//
// Errors
//
//   - ErrMatrixNil         if the matrix pointer is nil.
//   - ErrNonSquare         if the matrix is not square.
//   - ErrSourceOutOfRange  if a source lies outside [0, n).
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - context errors from WithContext and wrapped OnLevel hook errors.
package bfs
