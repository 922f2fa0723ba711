// SPDX-License-Identifier: MIT

package sample_test

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/sample"
	"github.com/katalvlaran/tinyspace/space"
)

// ExampleSample draws a batch of four (position, mode) observations.
func ExampleSample() {
	obs := space.Must(space.NewTuple([]*space.Space{
		space.Must(space.NewBox([]int{2}, ndarray.Float32, space.ScalarBound(-1), space.ScalarBound(1))),
		space.Must(space.NewDiscrete(3)),
	}))

	batch, err := sample.Sample(obs, sample.WithSeed(2024), sample.WithBatch(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, leaf := range batch.([]any) {
		a := leaf.(*ndarray.Array)
		fmt.Println(ndarray.FormatShape(a.Shape()), a.DType())
	}

	one, _ := sample.Sample(obs, sample.WithZeros())
	fmt.Println(space.Conforms(obs, one))

	// Output:
	// (4, 2) float32
	// (4,) int64
	// true
}
