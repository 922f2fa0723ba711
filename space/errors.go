// SPDX-License-Identifier: MIT
// Package space: sentinel errors.
//
// ErrInvalidSpace is the only error constructors return; ErrMismatch is only
// ever returned as a value by Mismatch (the validator never fails the call).

package space

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpace indicates a descriptor invariant was violated at
	// construction: non-positive dimension, n < 1, low > high, NaN bound,
	// duplicate Dict key, nil child, unknown dtype.
	ErrInvalidSpace = errors.New("space: invalid space")

	// ErrMismatch indicates a value does not conform to a descriptor.
	ErrMismatch = errors.New("space: value does not conform")
)

// spaceErrorf tags an invariant violation with the constructor and a reason.
func spaceErrorf(ctor, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", ctor, fmt.Sprintf(format, args...), ErrInvalidSpace)
}

// mismatchf reports a validation failure at path p.
func mismatchf(p Path, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", p, fmt.Sprintf(format, args...), ErrMismatch)
}
