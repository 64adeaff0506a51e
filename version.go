// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package cmdplug

// SemVersion is the semantic version of the cmdplug module, also reported by
// the cmdplug CLI's "version" command.
const SemVersion = "1.0.1"
