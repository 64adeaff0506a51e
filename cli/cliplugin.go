// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// SetupCLI defines an exposed plugin symbol type for adding “things” to a
// cobra root command (the cmdplug root command in particular): persistent CLI
// flags as well as built-in sub-commands.
type SetupCLI func(*cobra.Command)

// BeforeCommand defines an exposed plugin symbol type for running checks
// after the command line args have been processed and before running the
// (chosen) command.
type BeforeCommand func(*cobra.Command) error

// NewCommand defines the exposed plugin symbol type for compiled-in plugins
// contributing their sub-command to the cmdplug root command. Factories may
// fail; failed plugins then show up as broken placeholder commands.
type NewCommand func() (*cobra.Command, error)
