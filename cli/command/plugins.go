// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Provides the "cmdplug plugins" command for listing the plugin sub-commands
// attached to the launcher, together with their load status.

package command

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thediveo/go-plugger/v3"
	"github.com/thediveo/klo"

	"github.com/siemens/cmdplug"
	"github.com/siemens/cmdplug/cli"
)

// Builtin custom-columns templates
const (
	// PluginListTemplate defines the custom columns when listing plugins.
	PluginListTemplate = "PLUGIN:{.Name},STATUS:{.Status},SHORT:{.Short}"
	// PluginWideListTemplate is like PluginListTemplate, but additionally
	// tacks on a column with the load failure of broken plugins.
	PluginWideListTemplate = "PLUGIN:{.Name},STATUS:{.Status},SHORT:{.Short},ERROR:{.Error}"

	// NameListTemplate for handling "-o name" and only showing a custom
	// "name" column; this template should be used with no headers shown, as
	// kubectl and others do.
	NameListTemplate = "NAME:{.Name}"
)

// PluginInfo describes a single plugin sub-command for listing purposes.
type PluginInfo struct {
	// Name of the sub-command the plugin is attached under.
	Name string
	// Status is either "ok" or "broken".
	Status string
	// Short help of the plugin command, marker and all.
	Short string
	// Error is the captured load failure text of broken plugins, otherwise
	// empty.
	Error string
}

// pluginsCmd defines the "cmdplug plugins" command.
var pluginsCmd = &cobra.Command{
	Use:       "plugins [flags] [ok|broken]",
	Aliases:   []string{"plugin"},
	Short:     "List attached plugin commands and their load status",
	Args:      cobra.OnlyValidArgs,
	ValidArgs: []string{"ok", "broken"},
	RunE:      filteredpluginlist,
}

func init() {
	plugger.Group[cli.SetupCLI]().Register(PluginsSetupCLI, plugger.WithPlugin("plugins"))
}

// PluginsSetupCLI adds the “plugins” command.
func PluginsSetupCLI(cmd *cobra.Command) {
	cmd.AddCommand(pluginsCmd)
	pluginsCmd.Flags().StringP("output", "o", "",
		"Output format. One of: json|yaml|wide|custom-columns=...|custom-columns-file=...|jsonpath=...|jsonpath-file=...")
	pluginsCmd.Flags().Bool("no-headers", false, "When using the default or custom-column output format, don't print headers (default print headers).")
	pluginsCmd.Flags().String("sort-by", "{.Name}",
		"If non-empty, sort custom-columns using this field specification. The field specification is expressed as a JSONPath expression (e.g. '{.Name}').")
}

// filteredpluginlist gathers the plugin sub-commands attached to the root
// command and optionally filters them by load status for output using a
// template.
func filteredpluginlist(cmd *cobra.Command, args []string) error {
	// Get the status filter settings from the (already validated) args; no
	// args means showing plugins in all states. The filter is derived afresh
	// on every invocation, so nothing sticks to the command.
	showOk := len(args) == 0
	showBroken := len(args) == 0
	for _, arg := range args {
		switch arg {
		case "ok":
			showOk = true
		case "broken":
			showBroken = true
		}
	}
	log.Debugf("show ok: %v, broken: %v", showOk, showBroken)
	// Get the output CLI flag and prepare a suitable object printer.
	prn, err := getPrinter(cmd)
	if err != nil {
		return err
	}
	// ...throwing in sorting, if not explicitly forbidden. It depends on the
	// object printer if it will honor the sorted data or will just impose its
	// own order anyway.
	if sortby, err := cmd.LocalFlags().GetString("sort-by"); err == nil && sortby != "" {
		var err error
		prn, err = klo.NewSortingPrinter(sortby, prn)
		if err != nil {
			return err
		}
	}
	// Gather the plugin sub-commands from the root command, filter, and then
	// print them.
	attached := cmdplug.Attached(cmd.Root())
	infos := make([]*PluginInfo, 0, len(attached))
	for _, plugin := range attached {
		info := &PluginInfo{
			Name:   plugin.Name(),
			Status: "ok",
			Short:  plugin.Short,
		}
		if reason, broken := cmdplug.Broken(plugin); broken {
			info.Status = "broken"
			info.Error = reason
		}
		log.Debugf("found plugin %q (%s)", info.Name, info.Status)
		switch info.Status {
		case "ok":
			if !showOk {
				continue
			}
		case "broken":
			if !showBroken {
				continue
			}
		}
		infos = append(infos, info)
	}
	prn.Fprint(cmd.OutOrStdout(), infos)
	return nil
}

// getPrinter returns a value printer configured according to the output
// format chosen by the user, and some more optional output configuration
// flags.
func getPrinter(cmd *cobra.Command) (prn klo.ValuePrinter, err error) {
	outfmt, err := cmd.LocalFlags().GetString("output")
	if err != nil {
		return
	}
	if outfmt == "name" {
		// Support "-o name" output format which uses our builtin
		// custom-columns template to only show plugin names, and hide the
		// column header.
		prn, err = klo.PrinterFromFlag("custom-columns="+NameListTemplate, nil)
		if err != nil {
			panic(err)
		}
		prn.(*klo.CustomColumnsPrinter).HideHeaders = true
	} else {
		// For the other output format options, let the kubectl-like output
		// package handle the details and give us just the printer suitable
		// for dumping the plugin list onto our users.
		prn, err = klo.PrinterFromFlag(outfmt, &klo.Specs{
			DefaultColumnSpec: PluginListTemplate,
			WideColumnSpec:    PluginWideListTemplate,
		})
		if err != nil {
			return
		}
		if ccprn, ok := prn.(*klo.CustomColumnsPrinter); ok {
			ccprn.Padding = 3
			if noheaders, err := cmd.LocalFlags().GetBool("no-headers"); err == nil {
				ccprn.HideHeaders = noheaders
			}
		}
	}
	return
}
