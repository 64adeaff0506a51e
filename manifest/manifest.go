// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Implements loading (and only loading) plugin manifests; resolving manifest
// entries into commands happens in the sibling exec.go.

package manifest

import (
	"fmt"
	"os"

	"github.com/siemens/cmdplug"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Manifest declares a set of external executable plugins, to be attached as
// sub-commands to a host CLI.
type Manifest struct {
	// Prefix is prepended to plugin names when deriving the default
	// executable name for entries that don't spell out their command, such as
	// "mytool-".
	Prefix string `yaml:"prefix,omitempty"`
	// Entries lists the declared plugins.
	Entries []PluginEntry `yaml:"plugins"`
}

// PluginEntry declares a single external executable plugin.
type PluginEntry struct {
	// Name of the sub-command the plugin gets attached under. Required.
	Name string `yaml:"name"`
	// Command optionally names the executable backing this plugin; when
	// empty, it defaults to the manifest's prefix followed by the plugin
	// name. Relative names are looked up through PATH.
	Command string `yaml:"command,omitempty"`
	// Short optionally gives the short help to show for this plugin in
	// command listings.
	Short string `yaml:"short,omitempty"`
}

// Load reads and strictly decodes the plugin manifest from the YAML document
// at the specified path. Unknown manifest fields are errors, as are entries
// without a plugin name: the manifest is host-operator configuration, so the
// earlier typos surface, the better.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read plugin manifest: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("malformed plugin manifest %q: %w", path, err)
	}
	for idx, entry := range m.Entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("malformed plugin manifest %q: plugin #%d lacks a name",
				path, idx+1)
		}
	}
	return &m, nil
}

// Plugins returns the plugin descriptors for all manifest entries, in
// manifest order. The descriptors' loaders look up the backing executables
// only when called, so loading a manifest never fails just because one of its
// executables cannot be found right now.
func (m *Manifest) Plugins() []cmdplug.Plugin {
	plugins := make([]cmdplug.Plugin, 0, len(m.Entries))
	for _, entry := range m.Entries {
		entry := entry
		plugins = append(plugins, cmdplug.Plugin{
			Name: entry.Name,
			Load: func() (*cobra.Command, error) { return newExecCommand(m.Prefix, entry) },
		})
	}
	return plugins
}
