// SPDX-License-Identifier: MIT

package gymspaces

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// Equal reports value equality with the foreign library's semantics: Box
// compares shape, dtype and every bound; Dict ignores item order; Tuple is
// positional. Two nil spaces are equal.
func Equal(a, b Space) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Box:
		y, ok := b.(*Box)
		return ok && slices.Equal(x.Shape, y.Shape) && x.Dtype == y.Dtype &&
			vecEqual(x.Low, y.Low) && vecEqual(x.High, y.High)
	case *Discrete:
		y, ok := b.(*Discrete)
		return ok && *x == *y
	case *MultiDiscrete:
		y, ok := b.(*MultiDiscrete)
		return ok && slices.Equal(x.Nvec, y.Nvec) && nvecDtype(x) == nvecDtype(y) &&
			slices.Equal(nvecShape(x), nvecShape(y))
	case *MultiBinary:
		y, ok := b.(*MultiBinary)
		return ok && slices.Equal(x.N, y.N)
	case *Text:
		y, ok := b.(*Text)
		return ok && *x == *y
	case *Sequence:
		y, ok := b.(*Sequence)
		return ok && x.Stack == y.Stack && Equal(x.Feature, y.Feature)
	case *Dict:
		y, ok := b.(*Dict)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for _, it := range x.Items {
			if !Equal(it.Space, y.Get(it.Key)) {
				return false
			}
		}
		return true
	case *Tuple:
		y, ok := b.(*Tuple)
		if !ok || len(x.Spaces) != len(y.Spaces) {
			return false
		}
		for i := range x.Spaces {
			if !Equal(x.Spaces[i], y.Spaces[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func vecEqual(a, b *mat.VecDense) bool {
	if a == nil || b == nil {
		return a == b
	}

	return mat.Equal(a, b)
}

func nvecShape(m *MultiDiscrete) []int {
	if m.Shape == nil {
		return []int{len(m.Nvec)}
	}

	return m.Shape
}

// nvecDtype applies the foreign default dtype.
func nvecDtype(m *MultiDiscrete) string {
	if m.Dtype == "" {
		return "int64"
	}

	return m.Dtype
}
