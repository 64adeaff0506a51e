// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"

	"github.com/siemens/cmdplug"
	"github.com/siemens/cmdplug/cli"
)

// Provides the “cmdplug version” command. The semantic version is the one
// defined for the main cmdplug package, so there's no separate version number
// for the cmdplug CLI command. In addition, the version command lists the
// compiled-in command plugins.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version (with compiled-in command plugins).",
	Run: func(cmd *cobra.Command, args []string) {
		plugins := strings.Join(plugger.Group[cli.NewCommand]().Plugins(), ", ")
		if plugins == "" {
			plugins = "(none)"
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"%s version %s (compiled-in command plugins: %s)\n",
			cmd.Parent().Name(), cmdplug.SemVersion, plugins)
	},
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(
		VersionSetupCLI, plugger.WithPlugin("version"))
}

// VersionSetupCLI adds the “version” command.
func VersionSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(versionCmd)
}
