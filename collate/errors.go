// SPDX-License-Identifier: MIT

package collate

import "errors"

var (
	// ErrEmpty is returned when Collate receives no values.
	ErrEmpty = errors.New("collate: empty batch")

	// ErrShape is returned when batch elements disagree in structure, shape or
	// dtype, or hold a value that is neither a leaf nor a container.
	ErrShape = errors.New("collate: structure mismatch")
)
