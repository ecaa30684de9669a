// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// errUsage marks a non-conforming invocation.
var errUsage = errors.New("usage error")

// usageErrorf returns an error matching errUsage.
func usageErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// reportError prints err, followed by the usage of cmd for usage errors.
func reportError(w io.Writer, cmd *cobra.Command, err error) {
	fmt.Fprintf(w, "spbfs: %v\n", err)
	if errors.Is(err, errUsage) && cmd != nil {
		fmt.Fprint(w, cmd.UsageString())
	}
}
