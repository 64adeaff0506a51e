// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package cmdplug

const (
	// HonestlyVar names the environment variable controlling the default
	// broken-plugin marker policy. When it parses as a boolean true
	// ("true", "TRUE", "1", ...), DefaultOptions selects the honest marker;
	// any other value, as well as its complete absence, keeps the discreet
	// default.
	HonestlyVar = "CMDPLUG_HONESTLY"

	// DiscreetMarker prefixes the short help of broken plugin commands in
	// (default) discreet mode: a plain typographic dagger.
	DiscreetMarker = "†"

	// HonestMarker prefixes the short help of broken plugin commands when
	// operators opt into honesty about the state of their plugins.
	HonestMarker = "\U0001F4A9"
)
