// SPDX-License-Identifier: MIT
// Package sample - resolved configuration.
//
// Deterministic defaults:
//   - src   = PCG seeded with defaultSeed
//   - zeros = false
//   - batch = 0 (no batch dimension)

package sample

import "golang.org/x/exp/rand"

// config aggregates all Sampler knobs.
type config struct {
	src   rand.Source
	zeros bool
	batch int
}

// newConfig applies options in order over the defaults.
func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		c.src = sourceFromSeed(0)
	}

	return c
}
