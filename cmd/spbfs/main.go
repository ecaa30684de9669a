// SPDX-License-Identifier: MIT

// Command spbfs computes breadth-first hop distances over a sparse graph
// stored as a coordinate file, and generates synthetic graphs in the same
// format.
//
//	spbfs run GRAPH OUT SOURCE
//	spbfs GRAPH OUT SOURCE          (same as run)
//	spbfs gen KIND OUT [--n N] [--rows R --cols C] [--p P --seed S] [--undirected]
//
// Any failure, usage errors included, exits with status 1.
package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command tree on args and returns the process exit code.
func execute(args []string, out, errout io.Writer) int {
	cmd := NewCmdRoot(out, errout)
	cmd.SetArgs(args)
	if c, err := cmd.ExecuteC(); err != nil {
		reportError(errout, c, err)
		return 1
	}

	return 0
}
