// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package config

import "time"

const (
	// DefaultBaseURL is the public archive endpoint all fetches are made
	// against. Endpoint keys are appended to it verbatim.
	DefaultBaseURL = "https://swapi.dev/api/"

	// DefaultTimeoutMS bounds a single request from dial to full body.
	DefaultTimeoutMS = 5000

	// DefaultPort is the presentation server listen port, overridable via
	// --port or the PORT env variable.
	DefaultPort = 3000
)

// Settings is the runtime configuration resolved once from flags, env and the
// config file, then handed to each component. Nothing mutates it after
// startup.
type Settings struct {
	BaseURL  string
	Debug    bool
	Insecure bool
	Port     int
	Timeout  time.Duration
}

// TimeoutMS reports the timeout in milliseconds, the unit used by the
// --timeout flag and the /stats body.
func (s Settings) TimeoutMS() int64 {
	return s.Timeout.Milliseconds()
}
