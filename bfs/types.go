// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for matrix-driven breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/sparsebfs/bitset"
)

// Unreached is the Level value of a vertex with no path from the source.
const Unreached = -1

// Sentinel errors for BFS execution.
var (
	// ErrMatrixNil is returned if a nil matrix pointer is passed.
	ErrMatrixNil = errors.New("bfs: matrix is nil")

	// ErrNonSquare is returned when the traversal matrix is not n×n.
	ErrNonSquare = errors.New("bfs: matrix is not square")

	// ErrSourceOutOfRange is returned when a source vertex is not in [0, n).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation between levels.
	Ctx context.Context

	// MaxDepth, if > 0, stops the search once this level has been stamped.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnLevel is called once per non-empty level, level 0 (the source)
	// included, with the frontier discovered at that level. The frontier is
	// read-only. Returning an error aborts the search.
	OnLevel func(level int, frontier *bitset.Bitset) error

	// Logger receives one debug record per level.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnLevel hook
//   - a logger that discards everything.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		MaxDepth: 0,
		OnLevel:  func(int, *bitset.Bitset) error { return nil },
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search after level d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnLevel registers a callback run for every discovered level.
func WithOnLevel(fn func(level int, frontier *bitset.Bitset) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithLogger sets the structured logger used for per-level records.
func WithLogger(l *slog.Logger) Option {
	return func(o *BFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults and returns the recorded error.
func resolve(opts []Option) (BFSOptions, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result holds the outcome of a single-source traversal.
type Result struct {
	// Level[i] is the hop distance of vertex i, or Unreached.
	Level []int

	// Depth is the deepest level that discovered at least one vertex.
	Depth int

	// Reached counts vertices with a finite level, the source included.
	Reached int
}

// ReachedSet returns the vertices with a finite level as a bitset of
// capacity len(Level).
func (r *Result) ReachedSet() *bitset.Bitset {
	b := bitset.New(len(r.Level))
	for v, l := range r.Level {
		if l != Unreached {
			b.Set(v)
		}
	}

	return b
}

// MultiResult holds the outcome of a multi-source traversal.
type MultiResult struct {
	// Sources echoes the input sources; Level[k] belongs to Sources[k].
	Sources []int

	// Level[k][i] is the hop distance from Sources[k] to i, or Unreached.
	Level [][]int

	// Depth is the deepest level that discovered a vertex for any source.
	Depth int
}
