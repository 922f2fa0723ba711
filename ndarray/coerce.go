// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// number is the set of Go element types From accepts inside typed slices.
type number interface {
	constraints.Integer | constraints.Float
}

// From coerces a Go value into an *Array.
//
// Accepted inputs:
//   - *Array (returned as is; arrays are immutable).
//   - Go scalars: bool, int, int8, int16, int32, int64, uint8, float32, float64
//     become 0-d arrays. int maps to Int64.
//   - Typed flat slices of the same element types become 1-d arrays.
//
// Anything else (including []any, maps and unsigned widths outside uint8)
// returns ErrUnsupportedValue. Composite values are never leaves.
func From(v any) (*Array, error) {
	switch x := v.(type) {
	case *Array:
		if x == nil {
			return nil, arrayErrorf("From(nil *Array)", ErrUnsupportedValue)
		}
		return x, nil
	case bool:
		return newUnchecked(Bool, nil, []float64{boolToFloat(x)}), nil
	case int:
		return scalarOf(Int64, x), nil
	case int8:
		return scalarOf(Int8, x), nil
	case int16:
		return scalarOf(Int16, x), nil
	case int32:
		return scalarOf(Int32, x), nil
	case int64:
		return scalarOf(Int64, x), nil
	case uint8:
		return scalarOf(Uint8, x), nil
	case float32:
		return scalarOf(Float32, x), nil
	case float64:
		return scalarOf(Float64, x), nil
	case []bool:
		buf := make([]float64, len(x))
		for i, b := range x {
			buf[i] = boolToFloat(b)
		}
		return newUnchecked(Bool, []int{len(x)}, buf), nil
	case []int:
		return vectorOf(Int64, x), nil
	case []int8:
		return vectorOf(Int8, x), nil
	case []int16:
		return vectorOf(Int16, x), nil
	case []int32:
		return vectorOf(Int32, x), nil
	case []int64:
		return vectorOf(Int64, x), nil
	case []uint8:
		return vectorOf(Uint8, x), nil
	case []float32:
		return vectorOf(Float32, x), nil
	case []float64:
		return vectorOf(Float64, x), nil
	default:
		return nil, fmt.Errorf("From(%T): %w", v, ErrUnsupportedValue)
	}
}

// scalarOf builds a 0-d array; the Go type already guarantees representability.
func scalarOf[T number](dt DType, v T) *Array {
	return newUnchecked(dt, nil, []float64{float64(v)})
}

// vectorOf builds a 1-d array from a typed slice.
func vectorOf[T number](dt DType, xs []T) *Array {
	buf := make([]float64, len(xs))
	for i, v := range xs {
		buf[i] = float64(v)
	}

	return newUnchecked(dt, []int{len(xs)}, buf)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
