// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

/*
Package cmdplug attaches externally supplied sub-commands – “plugins” – to a
[cobra] command group. Plugin descriptors pair a declared command name with a
loader that may fail, so the commands of a CLI can come from anywhere: from
compiled-in registries (see the sibling registry package), from manifests of
stand-alone plugin executables (see the sibling manifest package), or from
whatever bespoke discovery a host application fancies.

A broken plugin never takes the whole CLI down with it: when a loader fails,
cmdplug attaches a placeholder command under the plugin's declared name
instead. The placeholder announces itself in command listings with a small
marker in its short help, and only when the user actually invokes it does it
report – and fail with – the original load error. Listing and invoking all
other commands is completely unaffected.

How prominently broken plugins announce themselves in listings is a display
policy decided once, when the plugins get attached: the default policy comes
from the CMDPLUG_HONESTLY environment variable, read a single time via
[DefaultOptions]. It is never re-read afterwards.

	group := &cobra.Command{Use: "mytool"}
	m, _ := manifest.Load("plugins.yaml")
	cmdplug.Attach(group, m.Plugins(), nil)
	group.Execute()

[cobra]: https://github.com/spf13/cobra
*/
package cmdplug
