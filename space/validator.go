// SPDX-License-Identifier: MIT
// Package space: value validation.
//
// Purpose:
//   - Answer "does this value fit this space" for every variant.
//   - Never fail the call: malformed input (wrong container kind, unsupported
//     Go type, nil) is a negative answer, not an error return.
//
// Determinism:
//   - Dict key differences are reported in sorted order so the same value
//     always produces the same mismatch message.

package space

import (
	"math"

	"github.com/katalvlaran/tinyspace/ndarray"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Conforms reports whether v structurally and numerically fits s: matching
// container kinds and key sets, identical leaf shapes, a dtype that casts
// safely to the leaf dtype, and every element inside the leaf's bounds.
func Conforms(s *Space, v any) bool {
	return Mismatch(s, v) == nil
}

// Contains reports whether v conforms to s. It is shorthand for Conforms.
func (s *Space) Contains(v any) bool {
	return Conforms(s, v)
}

// Mismatch explains why v does not conform to s. It returns nil when v
// conforms, and otherwise an error wrapping ErrMismatch whose message starts
// with the path of the first failing node.
func Mismatch(s *Space, v any) error {
	if s == nil {
		return mismatchf(nil, "nil space")
	}

	return mismatch(nil, s, v)
}

func mismatch(p Path, s *Space, v any) error {
	switch s.kind {
	case KindBox:
		return boxMismatch(p, s.box, v)
	case KindDiscrete:
		x, err := integerScalar(p, v)
		if err != nil {
			return err
		}
		if x < 0 || x >= float64(s.disc.n) {
			return mismatchf(p, "%v outside [0, %d)", x, s.disc.n)
		}
		return nil
	case KindMultiDiscrete:
		return multiMismatch(p, s.multi, v)
	case KindDict:
		return dictMismatch(p, s.dict, v)
	case KindTuple:
		vs, ok := v.([]any)
		if !ok {
			return mismatchf(p, "want a tuple ([]any), got %T", v)
		}
		if len(vs) != s.tuple.Len() {
			return mismatchf(p, "tuple length %d, want %d", len(vs), s.tuple.Len())
		}
		for i, c := range s.tuple.children {
			if err := mismatch(p.Index(i), c, vs[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		return mismatchf(p, "invalid space kind %s", s.kind)
	}
}

func boxMismatch(p Path, b *Box, v any) error {
	a, err := ndarray.From(v)
	if err != nil {
		return mismatchf(p, "want an array, got %T", v)
	}
	if !ndarray.SameShape(a.Shape(), b.shape) {
		return mismatchf(p, "shape %s, want %s",
			ndarray.FormatShape(a.Shape()), ndarray.FormatShape(b.shape))
	}
	if !ndarray.CanCast(a.DType(), b.dtype) {
		return mismatchf(p, "dtype %s does not cast safely to %s", a.DType(), b.dtype)
	}
	for i, x := range a.Data() {
		lo, hi := b.BoundsAt(i)
		if math.IsNaN(x) || x < lo || x > hi {
			return mismatchf(p, "element %d = %v outside [%v, %v]", i, x, lo, hi)
		}
	}

	return nil
}

// integerScalar accepts a Go integer or a 0-d integer array. Bools and
// floats are rejected even when integral.
func integerScalar(p Path, v any) (float64, error) {
	a, err := ndarray.From(v)
	if err != nil {
		return 0, mismatchf(p, "want an integer, got %T", v)
	}
	if a.NDim() != 0 || !a.DType().IsInteger() {
		return 0, mismatchf(p, "want an integer scalar, got %s of shape %s",
			a.DType(), ndarray.FormatShape(a.Shape()))
	}
	x, _ := a.Item()

	return x, nil
}

func multiMismatch(p Path, m *MultiDiscrete, v any) error {
	a, err := ndarray.From(v)
	if err != nil {
		return mismatchf(p, "want an integer array, got %T", v)
	}
	if !a.DType().IsInteger() {
		return mismatchf(p, "dtype %s is not an integer dtype", a.DType())
	}
	if a.NDim() != 1 || a.Len() != len(m.nvec) {
		return mismatchf(p, "shape %s, want (%d,)", ndarray.FormatShape(a.Shape()), len(m.nvec))
	}
	for i, x := range a.Data() {
		if x < 0 || x >= float64(m.nvec[i]) {
			return mismatchf(p, "element %d = %v outside [0, %d)", i, x, m.nvec[i])
		}
	}

	return nil
}

func dictMismatch(p Path, d *Dict, v any) error {
	vm, ok := v.(map[string]any)
	if !ok {
		return mismatchf(p, "want a dict (map[string]any), got %T", v)
	}
	for _, f := range d.fields {
		if _, ok := vm[f.Key]; !ok {
			return mismatchf(p, "missing key %q", f.Key)
		}
	}
	if len(vm) != d.Len() {
		extra := maps.Keys(vm)
		slices.Sort(extra)
		for _, k := range extra {
			if _, ok := d.index[k]; !ok {
				return mismatchf(p, "unexpected key %q", k)
			}
		}
	}
	for _, f := range d.fields {
		if err := mismatch(p.Key(f.Key), f.Space, vm[f.Key]); err != nil {
			return err
		}
	}

	return nil
}
