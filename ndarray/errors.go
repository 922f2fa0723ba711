// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
//
// All exported functions return these sentinels, optionally wrapped with a
// call-site tag via arrayErrorf. Tests and callers match with errors.Is.

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape contains a negative dimension.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrDataLength indicates the flat data length differs from the shape's element count.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrUnknownDType is returned when a dtype name or value is outside the closed set.
	ErrUnknownDType = errors.New("ndarray: unknown dtype")

	// ErrNotRepresentable indicates an element cannot be stored in the requested dtype
	// (fractional value for an integer dtype, out of range, non 0/1 bool).
	ErrNotRepresentable = errors.New("ndarray: value not representable in dtype")

	// ErrOutOfRange indicates an index outside the array bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch indicates operands whose shapes must agree but do not.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrDTypeMismatch indicates operands whose dtypes must agree but do not.
	ErrDTypeMismatch = errors.New("ndarray: dtype mismatch")

	// ErrEmptyStack is returned by Stack when called with no arrays.
	ErrEmptyStack = errors.New("ndarray: nothing to stack")

	// ErrUnsupportedValue is returned by From for Go values that are not
	// a scalar, a typed flat slice or an *Array.
	ErrUnsupportedValue = errors.New("ndarray: unsupported value type")
)

// arrayErrorf attaches a call-site tag to a sentinel.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
