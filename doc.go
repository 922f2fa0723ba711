// Package tinyspace describes, samples, validates and batches the observation
// and action values exchanged with reinforcement-learning environments.
//
// 🚀 What is inside?
//
//	• Descriptors: Box, Discrete, MultiDiscrete leaves; Dict and Tuple composites
//	• Validation: pure conformity checks that name the failing path
//	• Sampling: seeded, reproducible draws (uniform, exponential or normal per bound)
//	• Batching: collate a list of values along a new leading axis, split it back
//	• Interop: literal schemas in JSON/YAML/TOML and gym-style space dumps
//
// Under the hood the work is split into small packages:
//
//	ndarray/    dtype-tagged n-d arrays used for every leaf value
//	space/      the immutable Space descriptor, Walk/Leaves/FlatDim and the validator
//	sample/     Sampler, WithSeed/WithZeros/WithBatch options and independent Streams
//	collate/    Collate and Split
//	gymspaces/  a mirror of gym's space classes with their tagged JSON dump
//	bridge/     literal and gym conversions, value decoding and encoding
//	cmd/        the tinyspace command line tool
//
// Quick example:
//
//	s, _ := bridge.ParseYAML([]byte("pos: {shape: [3], low: -1, high: 1}\ngrip: {cls: discrete, n: 2}"))
//	v, _ := sample.Sample(s, sample.WithSeed(7))
//	ok := space.Conforms(s, v) // true
//
//	go install github.com/katalvlaran/tinyspace/cmd/tinyspace@latest
package tinyspace
