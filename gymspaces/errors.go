// SPDX-License-Identifier: MIT

package gymspaces

import "errors"

var (
	// ErrUnknownType is returned when a dump names a space class this package
	// does not mirror.
	ErrUnknownType = errors.New("gymspaces: unknown space type")

	// ErrMalformed is returned for a dump or constructor input that does not
	// describe a well-formed space (bad JSON, missing field, length mismatch).
	ErrMalformed = errors.New("gymspaces: malformed space")
)
