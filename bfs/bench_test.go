// SPDX-License-Identifier: MIT

package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsebfs/bfs"
)

// BenchmarkLevels_Chain measures BFS on a linear chain of N vertices, the
// worst case for level count.
func BenchmarkLevels_Chain(b *testing.B) {
	const N = 4096
	from, to := make([]int, N-1), make([]int, N-1)
	for i := 0; i < N-1; i++ {
		from[i], to[i] = i, i+1
	}
	at := mustTraversal(b, N, from, to)

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Levels(at, 0)
	}
}

// BenchmarkLevels_Random runs BFS on a random directed graph with average out-degree 8.
func BenchmarkLevels_Random(b *testing.B) {
	const N, deg = 1 << 15, 8
	rng := rand.New(rand.NewSource(42))
	from, to := make([]int, N*deg), make([]int, N*deg)
	for k := range from {
		from[k], to[k] = rng.Intn(N), rng.Intn(N)
	}
	at := mustTraversal(b, N, from, to)

	b.ReportAllocs()
	b.SetBytes(int64(N + N*deg))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Levels(at, 0)
	}
}

// BenchmarkMultiSource_Random runs 16 simultaneous traversals.
func BenchmarkMultiSource_Random(b *testing.B) {
	const N, deg, K = 1 << 12, 4, 16
	rng := rand.New(rand.NewSource(7))
	from, to := make([]int, N*deg), make([]int, N*deg)
	for k := range from {
		from[k], to[k] = rng.Intn(N), rng.Intn(N)
	}
	at := mustTraversal(b, N, from, to)
	sources := make([]int, K)
	for k := range sources {
		sources[k] = rng.Intn(N)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.MultiSource(at, sources)
	}
}
