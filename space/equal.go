// SPDX-License-Identifier: MIT

package space

import "github.com/katalvlaran/tinyspace/ndarray"

// Equal reports whether a and b describe the same space.
//
// Rules:
//   - same Kind and same attributes, recursively;
//   - Box bounds are compared elementwise after broadcasting, so
//     ScalarBound(0) equals an elementwise bound of zeros;
//   - Dict equality ignores key order, Tuple equality does not;
//   - descriptions are ignored.
//
// Two nil descriptors are equal; nil never equals a non-nil descriptor.
func Equal(a, b *Space) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindBox:
		return boxEqual(a.box, b.box)
	case KindDiscrete:
		return a.disc.n == b.disc.n
	case KindMultiDiscrete:
		return intsEqual(a.multi.nvec, b.multi.nvec)
	case KindDict:
		if a.dict.Len() != b.dict.Len() {
			return false
		}
		for _, f := range a.dict.fields {
			other, ok := b.dict.Get(f.Key)
			if !ok || !Equal(f.Space, other) {
				return false
			}
		}
		return true
	case KindTuple:
		if a.tuple.Len() != b.tuple.Len() {
			return false
		}
		for i, c := range a.tuple.children {
			if !Equal(c, b.tuple.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func boxEqual(a, b *Box) bool {
	if a.dtype != b.dtype || !ndarray.SameShape(a.shape, b.shape) {
		return false
	}
	n := a.Len()

	return boundEqual(a.low, b.low, n) && boundEqual(a.high, b.high, n)
}

// boundEqual compares two bounds of an n-element box after broadcasting.
func boundEqual(a, b Bound, n int) bool {
	if a.IsScalar() && b.IsScalar() {
		return a.vals[0] == b.vals[0]
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}

	return true
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
