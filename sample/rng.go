// SPDX-License-Identifier: MIT
// Package sample - RNG utilities.
//
// Goals:
//   - Determinism: same seed => identical samples across platforms.
//   - Encapsulation: a single source factory; no time-based seeding hidden anywhere.
//
// Concurrency:
//   - x/exp/rand sources are NOT goroutine-safe. Do not share a Sampler across
//     goroutines; use Streams to create independent ones.

package sample

import "golang.org/x/exp/rand"

// defaultSeed is the fixed seed used when callers pass seed==0 or no seed.
const defaultSeed uint64 = 1

// sourceFromSeed returns a deterministic PCG source.
// Policy: seed==0 => defaultSeed; otherwise the seed verbatim.
func sourceFromSeed(seed uint64) rand.Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.NewSource(seed)
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer so neighbouring stream ids decorrelate.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// Streams returns n samplers with independent deterministic sources derived
// from seed, one per vectorised environment or worker. Extra options are
// applied to every sampler after the derived seed. n < 1 yields nil.
func Streams(seed uint64, n int, opts ...Option) []*Sampler {
	if n < 1 {
		return nil
	}
	if seed == 0 {
		seed = defaultSeed
	}
	out := make([]*Sampler, n)
	for i := range out {
		all := append([]Option{WithSeed(deriveSeed(seed, uint64(i)))}, opts...)
		out[i] = New(all...)
	}

	return out
}
