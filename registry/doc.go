// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

/*
Package registry turns compiled-in plugin registrations into [cmdplug.Plugin]
descriptors. It builds on the [go-plugger] mechanism: plugins register a
command factory symbol in their init functions, and the host application then
drains the group into descriptors for [cmdplug.Attach].

The “namespace” separating independent plugin groups is the exposed symbol
type itself: a host application declares its own factory type (any type whose
underlying type is func() (*cobra.Command, error), such as [NewCommand]) per
extension point, plugins register symbols of that type, and [Plugins]
instantiated with that type only ever sees that one group.

	// in the plugin:
	func init() {
		plugger.Group[mytool.NewCommand]().Register(
			newFrobnicateCommand, plugger.WithPlugin("frobnicate"))
	}

	// in the host:
	cmdplug.Attach(rootCmd, registry.Plugins[mytool.NewCommand](), nil)

Factories registering themselves never break registration for anyone else: a
factory returning an error simply ends up as a broken placeholder command once
attached.

[go-plugger]: https://github.com/thediveo/go-plugger
*/
package registry
