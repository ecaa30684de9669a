// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// loadConfig reads a flat YAML mapping of flag names to scalar values, e.g.
//
//	log-level: debug
//	log-format: json
//	max-depth: 3
//
// and applies it to fs. Flags set on the command line win over the file.
// One file serves the whole command tree: keys defined only by other
// commands of root are skipped, keys no command defines are rejected.
func loadConfig(path string, root *cobra.Command, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil // empty file
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return fmt.Errorf("config %s: line %d: want a mapping of flag names", path, m.Line)
	}

	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("config %s: line %d: %q must be a scalar", path, val.Line, key.Value)
		}
		if key.Value == configFlag || !definedInTree(root, key.Value) {
			return fmt.Errorf("config %s: line %d: unknown key %q", path, key.Line, key.Value)
		}
		f := fs.Lookup(key.Value)
		if f == nil || f.Changed {
			continue
		}
		if err := fs.Set(key.Value, val.Value); err != nil {
			return fmt.Errorf("config %s: line %d: %w", path, val.Line, err)
		}
	}

	return nil
}

// definedInTree reports whether cmd or any of its descendants has a flag
// called name.
func definedInTree(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Lookup(name) != nil || cmd.PersistentFlags().Lookup(name) != nil {
		return true
	}
	for _, sub := range cmd.Commands() {
		if definedInTree(sub, name) {
			return true
		}
	}

	return false
}
