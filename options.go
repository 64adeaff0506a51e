// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

// Defines the options common to all plugin attachment operations -- not that
// there are that many, but this way we make explicit what gets decided at
// composition time, as opposed to being re-read from the process environment
// over and over again.

package cmdplug

import (
	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
)

// AttachOptions allows some degree of control over how plugins get attached
// to a command group, in particular over the display policy for plugins that
// failed to load.
type AttachOptions struct {
	// Honest selects the more, erm, honest marker for broken plugin commands
	// in command listings. The default is to stay discreet and only show a
	// small dagger, so first impressions of the command list don't suffer
	// too much from a single broken plugin.
	Honest bool `env:"CMDPLUG_HONESTLY"`
}

// DefaultOptions returns attachment options initialized from the process
// environment, read once at the time of this call. A CMDPLUG_HONESTLY value
// that doesn't parse as a boolean keeps the discreet default, as does an
// unset variable.
func DefaultOptions() *AttachOptions {
	opts := &AttachOptions{}
	if err := env.Parse(opts); err != nil {
		log.Debugf("ignoring unusable %s setting: %s", HonestlyVar, err.Error())
		return &AttachOptions{}
	}
	return opts
}
