// SPDX-License-Identifier: MIT

// Package ndarray is the value substrate of tinyspace: a small, immutable,
// n-dimensional numeric container with a closed dtype set.
//
// The package provides:
//
//   - DType: float32, float64, int8, int16, int32, int64, uint8 and bool,
//     with representable ranges and numpy-style "safe" casting rules.
//   - Array: flat row-major storage with an explicit shape (empty shape means
//     a 0-d scalar). Elements are held as float64 regardless of dtype, the
//     same single-buffer layout matrix.Dense uses for two dimensions.
//   - From: coercion of Go scalars and typed flat slices into arrays.
//   - Stack: join same-shaped arrays along a new leading axis.
//
// Arrays expose no mutators; every constructor copies its input, so an
// *Array can be shared freely between goroutines.
//
// Precision note: int64 elements with magnitude above 2^53 are not exactly
// representable in float64 storage. Spaces that need the full int64 range
// should be modelled with narrower bounds.
package ndarray
