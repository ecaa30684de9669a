// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsebfs/bfs"
	"github.com/katalvlaran/sparsebfs/matrix"
	"github.com/katalvlaran/sparsebfs/mtxio"
)

const (
	maxDepthFlag = "max-depth"
	reachedFlag  = "reached"
)

// RunFlags are the flags of the run command.
type RunFlags struct {
	MaxDepth    int
	ReachedPath string
}

// RunOpts is a fully resolved run invocation.
type RunOpts struct {
	GraphPath string
	OutPath   string
	Source    int
	MaxDepth  int
	// ReachedPath, if set, receives the reached vertex set as a roaring bitmap.
	ReachedPath string

	Logger *slog.Logger
	Out    io.Writer
}

func (f *RunFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.MaxDepth, maxDepthFlag, f.MaxDepth, "Stop after this many levels (0 = unlimited).")
	cmd.Flags().StringVar(&f.ReachedPath, reachedFlag, f.ReachedPath, "Also write the reached vertex set to this file (roaring portable format).")
}

// ToOptions validates positional args and resolves the invocation.
func (f *RunFlags) ToOptions(g *globalFlags, args []string, out, errout io.Writer) (*RunOpts, error) {
	if len(args) != 3 {
		return nil, usageErrorf("want GRAPH OUT SOURCE, got %d argument(s)", len(args))
	}
	source, err := strconv.Atoi(args[2])
	if err != nil || source < 0 {
		return nil, usageErrorf("SOURCE %q: want a non-negative vertex index", args[2])
	}
	logger, err := g.logger(errout)
	if err != nil {
		return nil, err
	}

	return &RunOpts{
		GraphPath:   args[0],
		OutPath:     args[1],
		Source:      source,
		MaxDepth:    f.MaxDepth,
		ReachedPath: f.ReachedPath,
		Logger:      logger,
		Out:         out,
	}, nil
}

func (f *RunFlags) execute(g *globalFlags, args []string, out, errout io.Writer) error {
	opts, err := f.ToOptions(g, args, out, errout)
	if err != nil {
		return err
	}

	return opts.Run()
}

var runExample = `# distances from vertex 0, at most three hops
spbfs run graph.mtx levels.txt 0 --max-depth=3
`

// NewCmdRun returns the run command.
func NewCmdRun(g *globalFlags, out, errout io.Writer) *cobra.Command {
	flags := &RunFlags{}

	cmd := &cobra.Command{
		Use:     "run GRAPH OUT SOURCE",
		Short:   "Write the BFS level of every vertex reachable from SOURCE",
		Example: runExample,
		Args:    cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return flags.execute(g, args, out, errout)
		},
	}
	flags.addFlags(cmd)

	return cmd
}

// Run loads the graph, traverses it and writes the level file.
func (o *RunOpts) Run() error {
	start := time.Now()
	log := loggerOrDiscard(o.Logger)

	a, err := readGraph(o.GraphPath)
	if err != nil {
		return err
	}
	log.Info("load", slog.String("path", o.GraphPath), sizeAttr(a.Rows(), a.Cols()), slog.Int("nnz", a.NNZ()))

	// file entries are (row=from, col=to); columns of the transpose list
	// out-neighbours, which is what the push step scans
	at := a.Transpose()

	res, err := bfs.Levels(at, o.Source, bfs.WithLogger(log), bfs.WithMaxDepth(o.MaxDepth))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info("done", slog.Int("reached", res.Reached), slog.Int("depth", res.Depth), slog.Duration("elapsed", time.Since(start)))

	if err := writeFile(o.OutPath, func(w io.Writer) error { return mtxio.WriteLevels(w, res.Level) }); err != nil {
		return err
	}
	log.Info("write", slog.String("path", o.OutPath), slog.Int("vertices", len(res.Level)))

	if o.ReachedPath != "" {
		reached := res.ReachedSet()
		if err := writeFile(o.ReachedPath, func(w io.Writer) error { return mtxio.WriteVertexSet(w, reached) }); err != nil {
			return err
		}
		log.Info("write", slog.String("path", o.ReachedPath), slog.Int("reached", reached.Count()))
	}

	return nil
}

// readGraph opens path (compressed or not) and builds its matrix.
func readGraph(path string) (*matrix.CSC, error) {
	r, err := mtxio.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	a, err := mtxio.ReadMatrix(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return a, nil
}

// writeFile creates path, runs fn on it and reports the first failure.
func writeFile(path string, fn func(io.Writer) error) error {
	w, err := mtxio.CreateFile(path)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	return nil
}
