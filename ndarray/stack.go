// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// Stack joins arrays along a new leading axis: n arrays of shape S become one
// array of shape (n, S...). Every array must share the first array's shape
// and dtype.
//
// Errors:
//   - ErrEmptyStack when arrs is empty.
//   - ErrShapeMismatch / ErrDTypeMismatch naming the first offending index.
//
// Complexity: O(total elements).
func Stack(arrs []*Array) (*Array, error) {
	if len(arrs) == 0 {
		return nil, arrayErrorf("Stack", ErrEmptyStack)
	}
	ref := arrs[0]
	buf := make([]float64, 0, len(arrs)*len(ref.data))
	for i, a := range arrs {
		if a.dtype != ref.dtype {
			return nil, fmt.Errorf("Stack: element %d has dtype %s, want %s: %w", i, a.dtype, ref.dtype, ErrDTypeMismatch)
		}
		if !SameShape(a.shape, ref.shape) {
			return nil, fmt.Errorf("Stack: element %d has shape %s, want %s: %w",
				i, FormatShape(a.shape), FormatShape(ref.shape), ErrShapeMismatch)
		}
		buf = append(buf, a.data...)
	}
	shape := append([]int{len(arrs)}, ref.shape...)

	return newUnchecked(ref.dtype, shape, buf), nil
}
