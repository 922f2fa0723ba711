// SPDX-License-Identifier: MIT
// Package sample_test: benchmarks.
//
// Policy: fixed seeds, descriptors built outside the timer.

package sample_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/sample"
	"github.com/katalvlaran/tinyspace/space"
)

// BenchmarkSample_Box84 draws an 84x84 bounded uint8 frame.
func BenchmarkSample_Box84(b *testing.B) {
	s := space.Must(space.NewBox([]int{84, 84}, ndarray.Uint8, space.Bound{}, space.Bound{}))
	sp := sample.New(sample.WithSeed(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sp.Sample(s); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSample_Dict draws a mixed dict with float tails and a batch of 8.
func BenchmarkSample_Dict(b *testing.B) {
	s := space.Must(space.NewDict([]space.Field{
		{Key: "vel", Space: space.Must(space.NewBox([]int{16}, ndarray.Float64, space.ScalarBound(0), space.ScalarBound(math.Inf(1))))},
		{Key: "act", Space: space.Must(space.NewMultiDiscrete([]int{3, 3, 2}))},
		{Key: "id", Space: space.Must(space.NewDiscrete(10))},
	}))
	sp := sample.New(sample.WithSeed(1), sample.WithBatch(8))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sp.Sample(s); err != nil {
			b.Fatal(err)
		}
	}
}
