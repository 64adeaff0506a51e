// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Implements the cmdplug "root" command with its global CLI flags, and
// assembles the sub-commands: built-ins registered through the plugin
// extension points, compiled-in command plugins, and the external executable
// plugins declared in an optional manifest.

package command

import (
	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"

	"github.com/siemens/cmdplug"
	"github.com/siemens/cmdplug/cli"
	"github.com/siemens/cmdplug/manifest"
	"github.com/siemens/cmdplug/registry"
)

// Config captures the process-environment configuration of the cmdplug
// command, consulted exactly once while assembling the root command.
type Config struct {
	// Manifest optionally points to a YAML plugin manifest declaring external
	// executable plugins to attach as sub-commands.
	Manifest string `env:"CMDPLUG_MANIFEST"`
}

// rootCmd represents the Cobra "root" command and thus the cmdplug CLI
// itself.
var rootCmd = &cobra.Command{
	Use:   "cmdplug",
	Short: "Run sub-commands supplied by plugins",
	Long: `cmdplug is a plugin-launcher CLI: its sub-commands come from compiled-in
command plugins as well as from external plugin executables declared in a YAML
manifest (see the CMDPLUG_MANIFEST environment variable). Plugins that fail to
load don't break the launcher; they show up as placeholder commands that
report the load failure when invoked.`,
	// See: https://github.com/spf13/cobra/issues/340
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Run the registered before-the-command plugins
		for _, beforeCmd := range plugger.Group[cli.BeforeCommand]().Symbols() {
			if err := beforeCmd(cmd); err != nil {
				return err
			}
		}
		return nil
	},
}

// SetupCLI registers the global ("persistent") CLI flags as well as the
// built-in (sub)commands via the plugin mechanism, and then attaches the
// compiled-in and manifest-declared plugin commands. It returns the
// ready-to-execute root command.
func SetupCLI() *cobra.Command {
	// Call registered plugins in order to add further CLI args as well as
	// built-in commands to the root command (or below).
	for _, setupCLI := range plugger.Group[cli.SetupCLI]().Symbols() {
		setupCLI(rootCmd)
	}
	// The display policy for broken plugins, as well as the optional plugin
	// manifest location, come from the process environment, read once here at
	// composition time.
	opts := cmdplug.DefaultOptions()
	if _, err := cmdplug.Attach(rootCmd, registry.Plugins[cli.NewCommand](), opts); err != nil {
		log.Errorf("cannot attach compiled-in plugins: %s", err.Error())
	}
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		log.Errorf("unusable environment configuration: %s", err.Error())
	}
	if cfg.Manifest != "" {
		m, err := manifest.Load(cfg.Manifest)
		if err != nil {
			log.Errorf("ignoring plugin manifest: %s", err.Error())
		} else if _, err := cmdplug.Attach(rootCmd, m.Plugins(), opts); err != nil {
			log.Errorf("cannot attach manifest plugins: %s", err.Error())
		}
	}
	return rootCmd
}
