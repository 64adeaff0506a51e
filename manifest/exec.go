// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Resolves manifest entries into passthrough commands running the backing
// plugin executables.

package manifest

import (
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newExecCommand resolves a single manifest entry into a passthrough command
// running the entry's backing executable, returning an error when the
// executable cannot be found. Flag parsing is disabled on the passthrough
// command: whatever the user typed after the sub-command name belongs to the
// plugin executable, not to us.
func newExecCommand(prefix string, entry PluginEntry) (*cobra.Command, error) {
	executable := entry.Command
	if executable == "" {
		executable = prefix + entry.Name
	}
	path, err := exec.LookPath(executable)
	if err != nil {
		return nil, fmt.Errorf("plugin executable %q: %w", executable, err)
	}
	short := entry.Short
	if short == "" {
		short = fmt.Sprintf("Run the %q plugin executable.", executable)
	}
	return &cobra.Command{
		Use:                entry.Name,
		Short:              short,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debugf("running plugin executable %q with args %q", path, args)
			plugin := exec.Command(path, args...)
			plugin.Stdin = os.Stdin
			plugin.Stdout = cmd.OutOrStdout()
			plugin.Stderr = cmd.ErrOrStderr()
			return plugin.Run()
		},
	}, nil
}
