// SPDX-License-Identifier: MIT
// Package space: constructors.
//
// Contract:
//   - Every constructor validates the invariants of its own variant and
//     returns ErrInvalidSpace (wrapped with the constructor name and reason)
//     without building anything on failure.
//   - Inputs are copied; callers may reuse their slices and maps.
//   - Children of composites are already-validated *Space values, so a
//     composite only checks its own structure (keys, nil children).

package space

import (
	"math"

	"github.com/katalvlaran/tinyspace/ndarray"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
)

const (
	ctxBox      = "NewBox"
	ctxDiscrete = "NewDiscrete"
	ctxMulti    = "NewMultiDiscrete"
	ctxDict     = "NewDict"
	ctxTuple    = "NewTuple"
)

// Option customizes optional descriptor metadata.
type Option func(*options)

type options struct {
	desc string
}

// WithDesc attaches a free-text description. It is kept for debugging and
// serialization and does not participate in Equal.
func WithDesc(desc string) Option {
	return func(o *options) { o.desc = desc }
}

func resolve(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Must panics if err is non-nil and returns s otherwise. It is intended for
// package-level descriptors and tests built from constant arguments.
func Must(s *Space, err error) *Space {
	if err != nil {
		panic(err)
	}

	return s
}

// NewBox builds a Box descriptor.
//
// Inputs:
//   - shape: each dimension > 0; an empty shape describes a scalar.
//   - dtype: one of the concrete ndarray dtypes.
//   - low, high: scalar or elementwise bounds; an unset Bound (zero value)
//     takes the matching side of DefaultBounds(dtype).
//
// Errors (ErrInvalidSpace):
//   - unknown dtype, non-positive dimension, element count overflowing int;
//   - elementwise bound whose length is not prod(shape);
//   - NaN bound, low > high for any element;
//   - integer/bool dtype with a bound that is infinite, fractional or
//     outside the dtype's range; float32 bound outside float32 range.
//
// Complexity: O(prod(shape)) for elementwise bounds, O(len(shape)) otherwise.
func NewBox(shape []int, dtype ndarray.DType, low, high Bound, opts ...Option) (*Space, error) {
	if !dtype.Valid() {
		return nil, spaceErrorf(ctxBox, "unknown dtype %d", uint8(dtype))
	}
	n := 1
	for i, d := range shape {
		if d <= 0 {
			return nil, spaceErrorf(ctxBox, "dimension %d is %d, must be > 0", i, d)
		}
		if d > math.MaxInt/n {
			return nil, spaceErrorf(ctxBox, "shape %v has more elements than an int can count", shape)
		}
		n *= d
	}

	defLow, defHigh := DefaultBounds(dtype)
	if !low.IsSet() {
		low = defLow
	}
	if !high.IsSet() {
		high = defHigh
	}
	if err := checkBound("low", low, n, dtype); err != nil {
		return nil, err
	}
	if err := checkBound("high", high, n, dtype); err != nil {
		return nil, err
	}
	if low.IsScalar() && high.IsScalar() {
		if low.vals[0] > high.vals[0] {
			return nil, spaceErrorf(ctxBox, "low %v > high %v", low.vals[0], high.vals[0])
		}
	} else {
		for i := 0; i < n; i++ {
			if low.At(i) > high.At(i) {
				return nil, spaceErrorf(ctxBox, "low %v > high %v at element %d", low.At(i), high.At(i), i)
			}
		}
	}

	return &Space{
		kind: KindBox,
		desc: resolve(opts).desc,
		box: &Box{
			shape: append([]int{}, shape...),
			dtype: dtype,
			low:   ArrayBound(low.vals),
			high:  ArrayBound(high.vals),
		},
	}, nil
}

// checkBound validates one side of a Box against the element count and dtype.
func checkBound(side string, b Bound, n int, dtype ndarray.DType) error {
	if !b.IsScalar() && b.Len() != n {
		return spaceErrorf(ctxBox, "%s has %d values, want 1 or %d", side, b.Len(), n)
	}
	if floats.HasNaN(b.vals) {
		return spaceErrorf(ctxBox, "%s contains NaN", side)
	}
	for _, v := range b.vals {
		if dtype.IsFloat() {
			if !math.IsInf(v, 0) && !dtype.Representable(v) {
				return spaceErrorf(ctxBox, "%s %v outside %s range", side, v, dtype)
			}
			continue
		}
		if !dtype.Representable(v) {
			return spaceErrorf(ctxBox, "%s %v not representable as %s", side, v, dtype)
		}
	}

	return nil
}

// NewDiscrete builds a Discrete descriptor with n >= 1 categories.
func NewDiscrete(n int, opts ...Option) (*Space, error) {
	if n < 1 {
		return nil, spaceErrorf(ctxDiscrete, "n is %d, must be >= 1", n)
	}

	return &Space{
		kind: KindDiscrete,
		desc: resolve(opts).desc,
		disc: &Discrete{n: n},
	}, nil
}

// NewMultiDiscrete builds a MultiDiscrete descriptor. nvec must be non-empty
// and every count >= 1.
func NewMultiDiscrete(nvec []int, opts ...Option) (*Space, error) {
	if len(nvec) == 0 {
		return nil, spaceErrorf(ctxMulti, "nvec is empty")
	}
	for i, c := range nvec {
		if c < 1 {
			return nil, spaceErrorf(ctxMulti, "nvec[%d] is %d, must be >= 1", i, c)
		}
	}

	return &Space{
		kind:  KindMultiDiscrete,
		desc:  resolve(opts).desc,
		multi: &MultiDiscrete{nvec: append([]int(nil), nvec...)},
	}, nil
}

// NewDict builds a Dict descriptor from ordered fields. Keys must be
// non-empty and unique; children must be non-nil. An empty Dict is valid.
func NewDict(fields []Field, opts ...Option) (*Space, error) {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Key == "" {
			return nil, spaceErrorf(ctxDict, "field %d has an empty key", i)
		}
		if f.Space == nil {
			return nil, spaceErrorf(ctxDict, "field %q has a nil space", f.Key)
		}
		if _, dup := index[f.Key]; dup {
			return nil, spaceErrorf(ctxDict, "duplicate key %q", f.Key)
		}
		index[f.Key] = i
	}

	return &Space{
		kind: KindDict,
		desc: resolve(opts).desc,
		dict: &Dict{fields: append([]Field(nil), fields...), index: index},
	}, nil
}

// NewDictFromMap builds a Dict descriptor whose iteration order is the
// sorted key order of m.
func NewDictFromMap(m map[string]*Space, opts ...Option) (*Space, error) {
	keys := maps.Keys(m)
	slices.Sort(keys)
	fields := make([]Field, len(keys))
	for i, k := range keys {
		fields[i] = Field{Key: k, Space: m[k]}
	}

	return NewDict(fields, opts...)
}

// NewTuple builds a Tuple descriptor. Children must be non-nil; an empty
// Tuple is valid.
func NewTuple(children []*Space, opts ...Option) (*Space, error) {
	for i, c := range children {
		if c == nil {
			return nil, spaceErrorf(ctxTuple, "child %d is nil", i)
		}
	}

	return &Space{
		kind:  KindTuple,
		desc:  resolve(opts).desc,
		tuple: &Tuple{children: append([]*Space(nil), children...)},
	}, nil
}
