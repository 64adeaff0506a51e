// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Implements the placeholder command standing in for a plugin that failed to
// load: listed with a marker, failing with the original error when invoked.

package cmdplug

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BrokenAnnotation is the cobra command annotation key marking placeholder
// commands for plugins that failed to load; its value is the captured load
// failure's text.
const BrokenAnnotation = "cmdplug/broken"

// NewBrokenCommand returns a placeholder command for a plugin of the
// specified name whose loading failed with the given cause. The placeholder's
// short help starts with a marker – discreet dagger or honest, well, see for
// yourself – so command listings hint at the problem without drowning it out.
// Its long help is the captured failure text, so "name --help" tells the full
// story. And invoking the placeholder deterministically fails with the
// original cause, exactly as if the plugin itself had failed at that very
// moment; it never swallows the failure.
//
// A nil opts selects DefaultOptions. The marker is chosen once, here, and not
// re-decided at listing time.
func NewBrokenCommand(name string, cause error, opts *AttachOptions) *cobra.Command {
	if cause == nil {
		// Belt and suspenders: a broken command without a cause would
		// otherwise "succeed" when invoked.
		cause = fmt.Errorf("plugin %q failed to load for unknown reasons", name)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	marker := DiscreetMarker
	if opts.Honest {
		marker = HonestMarker
	}
	return &cobra.Command{
		Use: name,
		Short: fmt.Sprintf("%s Warning: could not load plugin. See `%s --help`.",
			marker, name),
		Long:        cause.Error(),
		Annotations: map[string]string{BrokenAnnotation: cause.Error()},
		// Whatever args and flags the broken plugin would have taken, they
		// must never stand between the user and the original load failure.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		RunE: func(*cobra.Command, []string) error {
			return cause
		},
	}
}

// Broken returns the captured load failure text for placeholder commands
// created by NewBrokenCommand, together with true; for any other command it
// returns false.
func Broken(cmd *cobra.Command) (string, bool) {
	if cmd == nil {
		return "", false
	}
	reason, ok := cmd.Annotations[BrokenAnnotation]
	return reason, ok
}
