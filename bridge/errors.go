// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tinyspace/space"
)

var (
	// ErrSpaceParse indicates a literal schema or value literal is malformed
	// or ambiguous.
	ErrSpaceParse = errors.New("bridge: cannot parse space literal")

	// ErrUnsupportedSpace indicates a foreign space object has no native
	// descriptor variant.
	ErrUnsupportedSpace = errors.New("bridge: unsupported space")
)

// parseErrorf reports a malformed literal at path p.
func parseErrorf(p space.Path, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", p, fmt.Sprintf(format, args...), ErrSpaceParse)
}

// unsupportedf reports a foreign object at path p with no native variant.
func unsupportedf(p space.Path, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", p, fmt.Sprintf(format, args...), ErrUnsupportedSpace)
}

// at prefixes a constructor error with the path it was raised at.
func at(p space.Path, err error) error {
	return fmt.Errorf("%s: %w", p, err)
}
