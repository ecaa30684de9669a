// SPDX-License-Identifier: MIT

package bfs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/sparsebfs/bfs"
	"github.com/katalvlaran/sparsebfs/bitset"
	"github.com/katalvlaran/sparsebfs/matrix"
)

// mustTraversal builds the push-oriented matrix for an n-vertex edge list.
func mustTraversal(t testing.TB, n int, from, to []int) *matrix.CSC {
	t.Helper()
	at, err := bfs.FromCoordinates(n, from, to)
	require.NoError(t, err)

	return at
}

// oracleLevels computes reference hop distances with gonum's BreadthFirst.
func oracleLevels(n int, from, to []int, source int) []int {
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for k := range from {
		if from[k] == to[k] {
			continue // simple graphs reject self edges; they never shorten a path
		}
		g.SetEdge(g.NewEdge(simple.Node(from[k]), simple.Node(to[k])))
	}

	want := make([]int, n)
	for i := range want {
		want[i] = bfs.Unreached
	}
	var w traverse.BreadthFirst
	w.Walk(g, simple.Node(source), func(u graph.Node, d int) bool {
		want[u.ID()] = d
		return false
	})

	return want
}

// TestLevels_TriangleScenario is the 3-vertex graph 1->2, 2->3, 1->3 (1-based).
func TestLevels_TriangleScenario(t *testing.T) {
	at := mustTraversal(t, 3, []int{0, 1, 0}, []int{1, 2, 2})
	res, err := bfs.Levels(at, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, res.Level)
	assert.Equal(t, 1, res.Depth)
	assert.Equal(t, 3, res.Reached)
}

// TestLevels_Disconnected keeps the sentinel on unreachable vertices.
func TestLevels_Disconnected(t *testing.T) {
	// 0->1, 2->0 : vertex 2 has no incoming path from 0; vertex 3 is isolated
	at := mustTraversal(t, 4, []int{0, 2}, []int{1, 0})
	res, err := bfs.Levels(at, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, bfs.Unreached, bfs.Unreached}, res.Level)
	assert.Equal(t, 2, res.Reached)

	set := res.ReachedSet()
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []int{0, 1}, set.Indices())
	assert.Equal(t, res.Reached, set.Count())
}

// TestLevels_DirectedEdgesOnly ensures edges are followed in their direction.
func TestLevels_DirectedEdgesOnly(t *testing.T) {
	// chain 0->1->2->3 ; BFS from 3 reaches nothing
	from, to := []int{0, 1, 2}, []int{1, 2, 3}
	at := mustTraversal(t, 4, from, to)

	res, err := bfs.Levels(at, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Level)
	assert.Equal(t, 3, res.Depth)

	res, err = bfs.Levels(at, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, -1, -1, 0}, res.Level)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, 1, res.Reached)
}

// TestLevels_CycleAndSelfLoop covers re-visitation through a cycle and a loop.
func TestLevels_CycleAndSelfLoop(t *testing.T) {
	// 0->1->2->0 and 1->1
	at := mustTraversal(t, 3, []int{0, 1, 2, 1}, []int{1, 2, 0, 1})
	res, err := bfs.Levels(at, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, res.Level)
}

// TestLevels_Errors verifies that invalid inputs and options are rejected.
func TestLevels_Errors(t *testing.T) {
	_, err := bfs.Levels(nil, 0)
	require.ErrorIs(t, err, bfs.ErrMatrixNil)

	rect, err := matrix.Build(2, 3, nil, nil)
	require.NoError(t, err)
	_, err = bfs.Levels(rect, 0)
	require.ErrorIs(t, err, bfs.ErrNonSquare)

	at := mustTraversal(t, 2, nil, nil)
	_, err = bfs.Levels(at, 2)
	require.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
	_, err = bfs.Levels(at, -1)
	require.ErrorIs(t, err, bfs.ErrSourceOutOfRange)

	_, err = bfs.Levels(at, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.FromCoordinates(2, []int{0}, []int{5})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestLevels_MaxDepth verifies the depth limit for positive and zero depths.
func TestLevels_MaxDepth(t *testing.T) {
	at := mustTraversal(t, 4, []int{0, 1, 2}, []int{1, 2, 3})

	res, err := bfs.Levels(at, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, -1, -1}, res.Level)
	assert.Equal(t, 1, res.Depth)

	res, err = bfs.Levels(at, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Level)
}

// TestLevels_OnLevelHook records frontiers and aborts on error.
func TestLevels_OnLevelHook(t *testing.T) {
	// 0->{1,2}, 1->3, 2->3
	at := mustTraversal(t, 4, []int{0, 0, 1, 2}, []int{1, 2, 3, 3})

	var got [][]int
	_, err := bfs.Levels(at, 0, bfs.WithOnLevel(func(level int, f *bitset.Bitset) error {
		require.Equal(t, len(got), level)
		got = append(got, f.Indices())
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, got)

	stop := errors.New("stop")
	_, err = bfs.Levels(at, 0, bfs.WithOnLevel(func(level int, _ *bitset.Bitset) error {
		if level == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

// TestLevels_ContextCancelled stops before the first expansion.
func TestLevels_ContextCancelled(t *testing.T) {
	at := mustTraversal(t, 2, []int{0}, []int{1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Levels(at, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestLevels_Logger emits one debug record per discovered level.
func TestLevels_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	at := mustTraversal(t, 3, []int{0, 1}, []int{1, 2})

	_, err := bfs.Levels(at, 0, bfs.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(buf.String(), `"msg":"level"`))
	assert.Contains(t, buf.String(), `"depth":2`)
}

// TestLevels_MatchesGonumOracle cross-checks random directed graphs.
func TestLevels_MatchesGonumOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 40; trial++ {
		n := rng.Intn(80) + 1
		m := rng.Intn(3 * n)
		from, to := make([]int, m), make([]int, m)
		for k := 0; k < m; k++ {
			from[k], to[k] = rng.Intn(n), rng.Intn(n)
		}
		at := mustTraversal(t, n, from, to)
		src := rng.Intn(n)

		res, err := bfs.Levels(at, src)
		require.NoError(t, err)
		require.Equal(t, oracleLevels(n, from, to, src), res.Level, "trial %d n=%d src=%d", trial, n, src)
	}
}

// TestMultiSource_MatchesSingleSource compares every column to Levels.
func TestMultiSource_MatchesSingleSource(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 15; trial++ {
		n := rng.Intn(60) + 2
		m := rng.Intn(2 * n)
		from, to := make([]int, m), make([]int, m)
		for k := 0; k < m; k++ {
			from[k], to[k] = rng.Intn(n), rng.Intn(n)
		}
		at := mustTraversal(t, n, from, to)
		sources := []int{0, rng.Intn(n), rng.Intn(n), n - 1}

		multi, err := bfs.MultiSource(at, sources)
		require.NoError(t, err)
		require.Equal(t, sources, multi.Sources)
		require.Len(t, multi.Level, len(sources))

		depth := 0
		for k, s := range sources {
			single, err := bfs.Levels(at, s)
			require.NoError(t, err)
			require.Equal(t, single.Level, multi.Level[k], "trial %d source %d", trial, s)
			if single.Depth > depth {
				depth = single.Depth
			}
		}
		require.Equal(t, depth, multi.Depth)
	}
}

// TestMultiSource_EdgeCases covers empty sources, limits and errors.
func TestMultiSource_EdgeCases(t *testing.T) {
	at := mustTraversal(t, 4, []int{0, 1, 2}, []int{1, 2, 3})

	res, err := bfs.MultiSource(at, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Level)

	res, err = bfs.MultiSource(at, []int{0, 2}, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, -1, -1}, {-1, -1, 0, 1}}, res.Level)

	_, err = bfs.MultiSource(at, []int{4})
	require.ErrorIs(t, err, bfs.ErrSourceOutOfRange)
	_, err = bfs.MultiSource(nil, []int{0})
	require.ErrorIs(t, err, bfs.ErrMatrixNil)
	_, err = bfs.MultiSource(at, []int{0}, bfs.WithMaxDepth(-2))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}
