// SPDX-License-Identifier: MIT

// Package bitset provides a dense, fixed-capacity membership set over the
// integers [0, n), stored as a slice of 64-bit words.
//
// What
//
//   - Bit i lives in word i>>6 at offset i&63.
//   - Capacity is fixed by New(n) and never changes afterwards.
//   - Set, Unset and Test are O(1); Reset, Count, IsEmpty and UnionUpdate
//     are O(words).
//   - NextSet(pos) finds the smallest set bit strictly after pos, scanning
//     forward one word at a time. Indices() collects every set bit in
//     ascending order by chaining NextSet from position 0.
//   - Apply(targets, v) stamps v into targets[i] for every set bit i; BFS
//     uses it to record the level of a freshly discovered frontier.
//
// Why
//
//	Bitsets are the frontier, visited set and sparse accumulator of the
//	matrix and bfs packages. A dense word array gives branch-free
//	membership tests and word-at-a-time scanning, which is what the sparse
//	kernels need when they deduplicate row indices per column.
//
// Preconditions
//
//	Every bit index must satisfy 0 <= i < Len(). Violations are programmer
//	errors and panic with a "bitset:" message. UnionUpdate on sets of
//	different capacity returns ErrCapacityMismatch and leaves the receiver
//	unchanged.
//
// Interop
//
//	ToRoaring and FromRoaring convert to and from
//	github.com/RoaringBitmap/roaring/v2 bitmaps for callers that store or
//	exchange compressed sets.
package bitset
