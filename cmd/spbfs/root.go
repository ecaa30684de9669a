// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Persistent flag names.
const (
	configFlag    = "config"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// logger resolves --log-level and --log-format into a logger on errout.
func (g *globalFlags) logger(errout io.Writer) (*slog.Logger, error) {
	return newLogger(errout, g.LogLevel, g.LogFormat)
}

var rootExample = `# distances from vertex 0
spbfs run graph.mtx levels.txt 0

# the same, reading a compressed graph and logging as JSON
spbfs graph.mtx.zst levels.txt 0 --log-format=json --log-level=debug

# generate a 100x100 undirected grid
spbfs gen grid grid.mtx --rows=100 --cols=100 --undirected
`

// NewCmdRoot returns the spbfs command tree writing to out and errout.
func NewCmdRoot(out, errout io.Writer) *cobra.Command {
	g := &globalFlags{LogLevel: "info", LogFormat: logFormatText}
	runFlags := &RunFlags{}

	cmd := &cobra.Command{
		Use:           "spbfs [GRAPH OUT SOURCE]",
		Short:         "Breadth-first search over sparse boolean matrices",
		Long:          "Computes single-source hop distances over a graph stored as a coordinate file, using sparse boolean linear algebra.",
		Example:       rootExample,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if g.ConfigPath == "" {
				return nil
			}
			return loadConfig(g.ConfigPath, c.Root(), c.Flags())
		},
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("missing GRAPH OUT SOURCE")
			}
			return runFlags.execute(g, args, out, errout)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errout)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf("%v", err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.ConfigPath, configFlag, "", "YAML file of flag defaults; explicit flags override it.")
	pf.StringVar(&g.LogLevel, logLevelFlag, g.LogLevel, "Minimum log level: debug, info, warn or error.")
	pf.StringVar(&g.LogFormat, logFormatFlag, g.LogFormat, "Log format on stderr: text or json.")
	runFlags.addFlags(cmd)

	cmd.AddCommand(NewCmdRun(g, out, errout))
	cmd.AddCommand(NewCmdGen(g, out, errout))

	return cmd
}
