// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sparsebfs/matrix"
)

// MultiSource runs one BFS per source simultaneously, keeping the k
// frontiers as the columns of an n×k sparse matrix.
//
// Starting from F = InitMultiSource(at, sources) and V = F, every level
// computes
//
//	next = Diff(Multiply(at, F), V)   // neighbours not yet seen per source
//	V    = Add(V, next)
//	F    = next
//
// and stamps Level[k][i] for every row i of column k of next, until F has
// no entries or MaxDepth is reached. Level[k] equals Levels(at,
// sources[k]).Level. OnLevel is not invoked; the logger is.
//
// Returns ErrMatrixNil, ErrNonSquare, ErrSourceOutOfRange,
// ErrOptionViolation or a context error.
// Complexity: O(D · (flops + k·n/64)) for D levels.
func MultiSource(at *matrix.CSC, sources []int, opts ...Option) (*MultiResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n, err := validate(at)
	if err != nil {
		return nil, err
	}
	for k, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: source %d = %d not in [0,%d)", ErrSourceOutOfRange, k, s, n)
		}
	}

	frontier, err := matrix.InitMultiSource(at, sources)
	if err != nil {
		return nil, fmt.Errorf("bfs: MultiSource: %w", err)
	}
	visited := frontier.Copy()

	res := &MultiResult{
		Sources: append([]int(nil), sources...),
		Level:   make([][]int, len(sources)),
	}
	for k, s := range sources {
		res.Level[k] = make([]int, n)
		for i := range res.Level[k] {
			res.Level[k][i] = Unreached
		}
		res.Level[k][s] = 0
	}

	for level := 0; frontier.NNZ() > 0; {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if o.MaxDepth > 0 && level >= o.MaxDepth {
			break
		}

		level++
		reached, err := matrix.Multiply(at, frontier)
		if err != nil {
			return nil, fmt.Errorf("bfs: level %d: %w", level, err)
		}
		next, err := matrix.Diff(reached, visited)
		if err != nil {
			return nil, fmt.Errorf("bfs: level %d: %w", level, err)
		}
		for k := 0; k < next.Cols(); k++ {
			for _, i := range next.Column(k) {
				res.Level[k][i] = level
			}
		}
		if visited, err = matrix.Add(visited, next); err != nil {
			return nil, fmt.Errorf("bfs: level %d: %w", level, err)
		}
		frontier = next

		if next.NNZ() > 0 {
			res.Depth = level
		}
		o.Logger.LogAttrs(o.Ctx, slog.LevelDebug, "level",
			slog.Int("depth", level),
			slog.Int("sources", len(sources)),
			slog.Int("frontier", next.NNZ()),
		)
	}

	return res, nil
}
