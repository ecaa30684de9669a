// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sparsebfs/bitset"
	"github.com/katalvlaran/sparsebfs/matrix"
)

// walker encapsulates mutable single-source BFS state.
type walker struct {
	at       *matrix.CSC
	opts     BFSOptions
	ctx      context.Context
	frontier *bitset.Bitset // vertices discovered at the current level
	visited  *bitset.Bitset // union of every earlier frontier
	level    int
	res      *Result
}

// FromCoordinates builds the traversal matrix of an n-vertex graph from a
// 0-based edge list (from[k] → to[k]). The adjacency is built with the edge
// source as row and then transposed, so that column j lists j's
// out-neighbours as Levels expects.
func FromCoordinates(n int, from, to []int) (*matrix.CSC, error) {
	adj, err := matrix.Build(n, n, from, to)
	if err != nil {
		return nil, fmt.Errorf("bfs: FromCoordinates: %w", err)
	}

	return adj.Transpose(), nil
}

// validate checks the traversal matrix and returns its vertex count.
func validate(at *matrix.CSC) (int, error) {
	if at == nil {
		return 0, ErrMatrixNil
	}
	if err := matrix.ValidateSquare(at); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNonSquare, err)
	}

	return at.Rows(), nil
}

// Levels runs level-synchronous BFS on at from source.
//
// at must be square with column j listing the out-neighbours of j. Each
// iteration unions the frontier into visited, computes the next frontier as
// the masked product SpMV(at, frontier, visited), stamps its vertices with
// the new level and replaces the frontier, until the frontier is empty or
// MaxDepth is reached.
//
// Returns ErrMatrixNil, ErrNonSquare, ErrSourceOutOfRange,
// ErrOptionViolation, a context error, or a wrapped OnLevel error.
func Levels(at *matrix.CSC, source int, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	n, err := validate(at)
	if err != nil {
		return nil, err
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	w := &walker{
		at:       at,
		opts:     o,
		ctx:      o.Ctx,
		frontier: bitset.New(n),
		visited:  bitset.New(n),
		res:      &Result{Level: make([]int, n)},
	}
	for i := range w.res.Level {
		w.res.Level[i] = Unreached
	}

	// Seed: frontier = {source} at level 0, visited = {}
	w.frontier.Set(source)
	w.res.Level[source] = 0
	if err = w.emit(w.frontier); err != nil {
		return nil, err
	}

	if err = w.loop(); err != nil {
		return nil, err
	}
	for _, l := range w.res.Level {
		if l != Unreached {
			w.res.Reached++
		}
	}

	return w.res, nil
}

// loop advances one hop per iteration until the frontier drains.
func (w *walker) loop() error {
	for !w.frontier.IsEmpty() {
		// cancellation check (once per level)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.MaxDepth > 0 && w.level >= w.opts.MaxDepth {
			return nil
		}

		w.level++
		if err := w.visited.UnionUpdate(w.frontier); err != nil {
			return fmt.Errorf("bfs: level %d: %w", w.level, err)
		}
		next, err := matrix.SpMV(w.at, w.frontier, w.visited)
		if err != nil {
			return fmt.Errorf("bfs: level %d: %w", w.level, err)
		}
		next.Apply(w.res.Level, w.level)
		w.frontier = next

		if !next.IsEmpty() {
			w.res.Depth = w.level
			if err = w.emit(next); err != nil {
				return err
			}
		}
	}

	return nil
}

// emit logs the level and runs the OnLevel hook.
func (w *walker) emit(frontier *bitset.Bitset) error {
	w.opts.Logger.LogAttrs(w.ctx, slog.LevelDebug, "level",
		slog.Int("depth", w.level),
		slog.Int("frontier", frontier.Count()),
	)
	if err := w.opts.OnLevel(w.level, frontier); err != nil {
		return fmt.Errorf("bfs: OnLevel error at level %d: %w", w.level, err)
	}

	return nil
}
