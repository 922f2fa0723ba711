// SPDX-License-Identifier: MIT

package sample

import "errors"

var (
	// ErrNilSpace is returned when Sample is called with a nil descriptor.
	ErrNilSpace = errors.New("sample: nil space")

	// ErrInvalidSpace is returned for a descriptor whose Kind is not one of
	// the five known variants (only reachable with a zero space.Space).
	ErrInvalidSpace = errors.New("sample: invalid space kind")
)
