// SPDX-License-Identifier: MIT

// Package sample draws pseudo-random values that conform to a space.Space.
//
// Distributions per leaf (each element and each leaf independently):
//
//	Box, float dtype, both bounds finite   Uniform(low, high)
//	Box, float dtype, only low finite      low + Exponential(1)
//	Box, float dtype, only high finite     high - Exponential(1)
//	Box, float dtype, unbounded            Normal(0, 1)
//	Box, integer/bool dtype                uniform integer in [low, high]
//	Discrete(n)                            uniform int64 in [0, n)
//	MultiDiscrete(nvec)                    uniform per position in [0, nvec[i])
//
// Uniform sampling over an infinite interval is undefined, hence the
// exponential and normal fallbacks for half-bounded and unbounded elements.
// Float results are rounded to the box dtype and clamped into the bounds, so
// every sample satisfies space.Conforms.
//
// Dict samples are map[string]any, Tuple samples []any, Discrete samples
// int64, Box and MultiDiscrete samples *ndarray.Array.
//
// Randomness comes from a golang.org/x/exp/rand Source owned by the Sampler;
// there is no package-level random state. Without WithSeed/WithSource a fixed
// default seed is used, so runs are reproducible unless the caller seeds
// differently. A *Sampler is not safe for concurrent use; Streams derives
// independent samplers for parallel workers.
package sample
