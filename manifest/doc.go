// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

/*
Package manifest loads plugin manifests: YAML documents declaring external
plugin executables that should become sub-commands of a host CLI, in the way
popularized by kubectl and friends. A manifest names its plugins and
optionally the executables backing them; executables without an explicit
command default to the manifest's prefix followed by the plugin name, looked
up through PATH.

	prefix: mytool-
	plugins:
	  - name: frobnicate
	    short: Frobnicates the transmogrifier.
	  - name: report
	    command: mytool-reporting
	    short: Produces transmogrification reports.

A manifest doesn't resolve anything by itself: [Manifest.Plugins] returns
[cmdplug.Plugin] descriptors whose loaders perform the PATH lookup when the
descriptors get attached. Plugins whose executables went missing thus end up
as broken placeholder commands instead of breaking the host CLI.
*/
package manifest
