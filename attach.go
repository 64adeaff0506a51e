// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Implements attaching plugin descriptors as sub-commands to a cobra command
// group, containing individual plugin load failures as placeholder commands.

package cmdplug

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// ErrNotAGroup indicates a programmer error: the command passed to Attach
// cannot act as a group of sub-commands, such as a plain runnable leaf
// command, or no command at all.
var ErrNotAGroup = errors.New("not a command group")

// PluginAnnotation is the cobra command annotation key marking sub-commands
// that were attached by Attach; its value is the plugin's declared name.
const PluginAnnotation = "cmdplug/plugin"

// Plugin describes a single potential sub-command: the name it is to be
// attached under, together with a loader that either produces the ready-made
// command or the reason why it cannot.
type Plugin struct {
	// Name is the sub-command name the plugin gets attached under, regardless
	// of what the loaded command would have called itself.
	Name string
	// Load returns the plugin's command, or a non-nil error when the plugin
	// cannot be obtained. Load is called exactly once, at attachment time.
	Load func() (*cobra.Command, error)
}

// Attach resolves the given plugin descriptors in order and attaches each of
// them as a sub-command to the group. Plugins whose loader fails don't abort
// the remaining descriptors; they get attached as placeholder commands
// instead, deferring the load failure until the moment a user actually
// invokes them (see NewBrokenCommand). Attach returns the group it was given,
// now augmented, so attachment can be chained fluently.
//
// Attach must be given a command that can act as a group, that is, a command
// that either already has sub-commands or that isn't a bare runnable leaf
// command. Anything else is a programmer error reported immediately as an
// ErrNotAGroup without attaching a single descriptor.
//
// Descriptors with duplicate names follow last-write-wins semantics: the
// later descriptor replaces the earlier sub-command, with a warning logged.
//
// A nil opts selects DefaultOptions.
func Attach(group *cobra.Command, plugins []Plugin, opts *AttachOptions) (*cobra.Command, error) {
	if group == nil {
		return nil, fmt.Errorf("cannot attach plugins to nil command: %w", ErrNotAGroup)
	}
	if group.Runnable() && !group.HasSubCommands() {
		return group, fmt.Errorf("cannot attach plugins to runnable leaf command %q: %w",
			group.Name(), ErrNotAGroup)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	for _, plugin := range plugins {
		cmd := resolve(plugin, opts)
		if cmd.Annotations == nil {
			cmd.Annotations = map[string]string{}
		}
		cmd.Annotations[PluginAnnotation] = plugin.Name
		if old := subCommand(group, plugin.Name); old != nil {
			log.Warnf("plugin %q replaces already registered %q sub-command",
				plugin.Name, old.Name())
			group.RemoveCommand(old)
		}
		group.AddCommand(cmd)
	}
	return group, nil
}

// resolve runs a single plugin descriptor's loader and returns either the
// loaded command, forced under the plugin's declared name, or a placeholder
// command carrying the load failure.
func resolve(plugin Plugin, opts *AttachOptions) *cobra.Command {
	if plugin.Load == nil {
		return NewBrokenCommand(plugin.Name,
			fmt.Errorf("plugin %q provides no loader", plugin.Name), opts)
	}
	cmd, err := plugin.Load()
	if err == nil && cmd == nil {
		err = fmt.Errorf("plugin %q loaded no command", plugin.Name)
	}
	if err != nil {
		log.Warnf("could not load plugin %q: %s", plugin.Name, err.Error())
		return NewBrokenCommand(plugin.Name, err, opts)
	}
	rename(cmd, plugin.Name)
	return cmd
}

// rename forces the command under the specified name, keeping any argument
// synopsis the command's use line might carry.
func rename(cmd *cobra.Command, name string) {
	if name == "" || cmd.Name() == name {
		return
	}
	if _, synopsis, ok := strings.Cut(cmd.Use, " "); ok {
		cmd.Use = name + " " + synopsis
		return
	}
	cmd.Use = name
}

// subCommand returns the group's sub-command with the specified name, or nil.
func subCommand(group *cobra.Command, name string) *cobra.Command {
	cmds := group.Commands()
	idx := slices.IndexFunc(cmds, func(cmd *cobra.Command) bool {
		return cmd.Name() == name
	})
	if idx < 0 {
		return nil
	}
	return cmds[idx]
}

// Attached returns the sub-commands of group that were attached as plugins by
// Attach, in the group's own command order. Sub-commands registered through
// other means don't show up here.
func Attached(group *cobra.Command) []*cobra.Command {
	var plugins []*cobra.Command
	for _, cmd := range group.Commands() {
		if _, ok := cmd.Annotations[PluginAnnotation]; ok {
			plugins = append(plugins, cmd)
		}
	}
	return plugins
}
