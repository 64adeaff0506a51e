// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

/*
Package cli defines plugin extension points for the cmdplug command. This
allows to build extended plugin-launcher CLIs that leverage the existing base
implementation.

# Extension Points

The following plugin “group” extension points are available (and also invoked
in this general order):

  - [SetupCLI]: for adding persistent CLI args as well as built-in (sub)
    commands to the (in [cobra] parlance) “root” command.
  - [NewCommand]: for compiled-in plugins contributing their very own
    sub-commands. These factories are drained through the [registry] package
    and attached after all [SetupCLI] plugins have been called; factories
    that fail end up as broken placeholder commands instead of taking the
    CLI down.
  - [BeforeCommand]: for checking and doing things just before the command
    runs.

Simply put, the plugin mechanism used here is compile-time only and allows
so-called plugins to register functions in what is termed “groups”. The
registered functions then can be iterated over. For more details about the
plugin mechanism, please refer to [go-plugger].

[cobra]: https://github.com/spf13/cobra
[go-plugger]: https://github.com/thediveo/go-plugger
[registry]: https://pkg.go.dev/github.com/siemens/cmdplug/registry
*/
package cli
