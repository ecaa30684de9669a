// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsebfs/builder"
	"github.com/katalvlaran/sparsebfs/mtxio"
)

// GenFlags are the flags of the gen command.
type GenFlags struct {
	N          int
	Rows       int
	Cols       int
	P          float64
	Seed       int64
	Undirected bool
}

// generators maps KIND to its constructor.
var generators = map[string]func(f *GenFlags) builder.Constructor{
	"path":     func(f *GenFlags) builder.Constructor { return builder.Path(f.N) },
	"cycle":    func(f *GenFlags) builder.Constructor { return builder.Cycle(f.N) },
	"star":     func(f *GenFlags) builder.Constructor { return builder.Star(f.N) },
	"wheel":    func(f *GenFlags) builder.Constructor { return builder.Wheel(f.N) },
	"grid":     func(f *GenFlags) builder.Constructor { return builder.Grid(f.Rows, f.Cols) },
	"complete": func(f *GenFlags) builder.Constructor { return builder.Complete(f.N) },
	"random":   func(f *GenFlags) builder.Constructor { return builder.RandomSparse(f.N, f.P) },
}

func kinds() string {
	names := make([]string, 0, len(generators))
	for k := range generators {
		names = append(names, k)
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

// GenOpts is a fully resolved gen invocation.
type GenOpts struct {
	Kind    string
	OutPath string
	Flags   GenFlags
	Logger  *slog.Logger
}

// ToOptions validates positional args and resolves the invocation.
func (f *GenFlags) ToOptions(g *globalFlags, args []string, errout io.Writer) (*GenOpts, error) {
	if len(args) != 2 {
		return nil, usageErrorf("want KIND OUT, got %d argument(s)", len(args))
	}
	kind := strings.ToLower(args[0])
	if _, ok := generators[kind]; !ok {
		return nil, usageErrorf("KIND %q: want one of %s", args[0], kinds())
	}
	logger, err := g.logger(errout)
	if err != nil {
		return nil, err
	}

	return &GenOpts{Kind: kind, OutPath: args[1], Flags: *f, Logger: logger}, nil
}

// NewCmdGen returns the gen command.
func NewCmdGen(g *globalFlags, _, errout io.Writer) *cobra.Command {
	flags := &GenFlags{N: 16, Rows: 4, Cols: 4, P: 0.1, Seed: 1}

	cmd := &cobra.Command{
		Use:   "gen KIND OUT",
		Short: "Write a synthetic graph (" + kinds() + ") as a coordinate file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := flags.ToOptions(g, args, errout)
			if err != nil {
				return err
			}
			return opts.Run()
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&flags.N, "n", flags.N, "Vertex count for path, cycle, star, wheel, complete and random.")
	fs.IntVar(&flags.Rows, "rows", flags.Rows, "Grid rows.")
	fs.IntVar(&flags.Cols, "cols", flags.Cols, "Grid columns.")
	fs.Float64Var(&flags.P, "p", flags.P, "Arc probability for random.")
	fs.Int64Var(&flags.Seed, "seed", flags.Seed, "RNG seed for random.")
	fs.BoolVar(&flags.Undirected, "undirected", flags.Undirected, "Emit both directions of every arc.")

	return cmd
}

// Run generates the graph and writes it in coordinate format.
func (o *GenOpts) Run() error {
	log := loggerOrDiscard(o.Logger)

	bopts := []builder.BuilderOption{builder.WithSeed(o.Flags.Seed)}
	if o.Flags.Undirected {
		bopts = append(bopts, builder.WithUndirected())
	}
	coords, err := builder.Build(bopts, generators[o.Kind](&o.Flags))
	if err != nil {
		return err
	}
	m, err := coords.Build()
	if err != nil {
		return err
	}

	if err := writeFile(o.OutPath, func(w io.Writer) error { return mtxio.WriteCoordinates(w, m) }); err != nil {
		return err
	}
	log.Info("write", slog.String("path", o.OutPath), slog.String("kind", o.Kind), sizeAttr(m.Rows(), m.Cols()), slog.Int("nnz", m.NNZ()))

	return nil
}
