// SPDX-License-Identifier: MIT
// Package sample - functional options.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors panic on meaningless inputs (nil source, batch < 1);
//     Sample itself never panics.
//   - Later options override earlier ones.

package sample

import "golang.org/x/exp/rand"

// Option customizes a Sampler.
type Option func(*config)

// WithSeed seeds a fresh PCG source (0 selects the package default seed).
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = sourceFromSeed(seed)
	}
}

// WithSource uses src for every draw. The Sampler takes ownership; do not
// draw from src elsewhere while the Sampler is in use. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("sample: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithZeros switches to deterministic "zero" samples: every element is the
// value closest to 0 inside its bounds, Discrete samples are 0. No randomness
// is consumed.
func WithZeros() Option {
	return func(c *config) {
		c.zeros = true
	}
}

// WithBatch prepends a batch dimension of size n: the result equals
// collating n independent samples. Panics if n < 1.
func WithBatch(n int) Option {
	if n < 1 {
		panic("sample: WithBatch(n<1)")
	}
	return func(c *config) {
		c.batch = n
	}
}
