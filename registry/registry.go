// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package registry

import (
	"github.com/siemens/cmdplug"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
)

// NewCommand is the canonical exposed symbol type for plugins contributing a
// sub-command: a factory that either returns the ready-made command, or the
// reason why it cannot be provided. Host applications wanting several
// independent plugin namespaces declare their own symbol types with the same
// underlying function type instead.
type NewCommand func() (*cobra.Command, error)

// Plugins returns the plugin descriptors for all command factory symbols
// registered in the plugger group of the exposed symbol type T, in the
// group's plugin (placement) order. Each plugin is expected to register
// exactly one factory symbol; the descriptor names are the registered plugin
// names.
func Plugins[T ~func() (*cobra.Command, error)]() []cmdplug.Plugin {
	group := plugger.Group[T]()
	names := group.Plugins()
	symbols := group.Symbols()
	if len(symbols) != len(names) {
		// A plugin registered more than one symbol in this group, so names
		// cannot be matched up with their factories anymore.
		panic("registry: plugins must register exactly one command factory each")
	}
	plugins := make([]cmdplug.Plugin, 0, len(symbols))
	for idx, symbol := range symbols {
		plugins = append(plugins, cmdplug.Plugin{
			Name: names[idx],
			Load: (func() (*cobra.Command, error))(symbol),
		})
	}
	return plugins
}
