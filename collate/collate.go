// SPDX-License-Identifier: MIT
// Package collate: batching and its inverse.
//
// Contract:
//   - Collate never mutates its inputs; leaves are copied into fresh arrays.
//   - Dict keys are visited in sorted order so the same bad batch always
//     reports the same path.
//   - Leaf dtypes may differ only when they share a safe common dtype
//     (e.g. int64 and float64 promote to float64); the batch takes that dtype.

package collate

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Option customizes Collate.
type Option func(*config)

type config struct {
	space *space.Space
}

// WithSpace validates every element against s before stacking; an element
// that does not conform fails the whole batch with ErrShape (wrapping
// space.ErrMismatch). Panics on nil.
func WithSpace(s *space.Space) Option {
	if s == nil {
		panic("collate: WithSpace(nil)")
	}
	return func(c *config) {
		c.space = s
	}
}

// Collate batches values along a new leading axis.
//
// Errors:
//   - ErrEmpty when values is empty.
//   - ErrShape when an element disagrees with values[0] (or, with WithSpace,
//     with the descriptor).
//
// Complexity: O(total leaf elements).
func Collate(values []any, opts ...Option) (any, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.space != nil {
		for i, v := range values {
			if err := space.Mismatch(cfg.space, v); err != nil {
				return nil, fmt.Errorf("element %d: %w: %w", i, err, ErrShape)
			}
		}
	}

	return collate(nil, values)
}

// shapef reports a batch disagreement at path p.
func shapef(p space.Path, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", p, fmt.Sprintf(format, args...), ErrShape)
}

func collate(p space.Path, vs []any) (any, error) {
	switch first := vs[0].(type) {
	case map[string]any:
		keys := maps.Keys(first)
		slices.Sort(keys)
		ms := make([]map[string]any, len(vs))
		for i, v := range vs {
			m, ok := v.(map[string]any)
			if !ok {
				return nil, shapef(p, "element %d is %T, want a dict", i, v)
			}
			if err := sameKeys(p, i, keys, m); err != nil {
				return nil, err
			}
			ms[i] = m
		}
		out := make(map[string]any, len(keys))
		col := make([]any, len(vs))
		for _, k := range keys {
			for i, m := range ms {
				col[i] = m[k]
			}
			b, err := collate(p.Key(k), col)
			if err != nil {
				return nil, err
			}
			out[k] = b
		}
		return out, nil
	case []any:
		ts := make([][]any, len(vs))
		for i, v := range vs {
			t, ok := v.([]any)
			if !ok {
				return nil, shapef(p, "element %d is %T, want a tuple", i, v)
			}
			if len(t) != len(first) {
				return nil, shapef(p, "element %d has length %d, want %d", i, len(t), len(first))
			}
			ts[i] = t
		}
		out := make([]any, len(first))
		col := make([]any, len(vs))
		for j := range first {
			for i, t := range ts {
				col[i] = t[j]
			}
			b, err := collate(p.Index(j), col)
			if err != nil {
				return nil, err
			}
			out[j] = b
		}
		return out, nil
	default:
		return stackLeaves(p, vs)
	}
}

func sameKeys(p space.Path, i int, keys []string, m map[string]any) error {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return shapef(p, "element %d is missing key %q", i, k)
		}
	}
	if len(m) != len(keys) {
		extra := maps.Keys(m)
		slices.Sort(extra)
		for _, k := range extra {
			if !slices.Contains(keys, k) {
				return shapef(p, "element %d has unexpected key %q", i, k)
			}
		}
	}

	return nil
}

func stackLeaves(p space.Path, vs []any) (*ndarray.Array, error) {
	arrs := make([]*ndarray.Array, len(vs))
	var common ndarray.DType
	for i, v := range vs {
		a, err := ndarray.From(v)
		if err != nil {
			return nil, shapef(p, "element %d: %v", i, err)
		}
		arrs[i] = a
		switch {
		case i == 0:
			common = a.DType()
		case ndarray.CanCast(a.DType(), common):
		case ndarray.CanCast(common, a.DType()):
			common = a.DType()
		default:
			return nil, shapef(p, "element %d has dtype %s, incompatible with %s", i, a.DType(), common)
		}
	}
	for i, a := range arrs {
		if a.DType() == common {
			continue
		}
		c, err := ndarray.New(common, a.Shape(), a.Data())
		if err != nil {
			return nil, shapef(p, "element %d: %v", i, err)
		}
		arrs[i] = c
	}
	out, err := ndarray.Stack(arrs)
	if err != nil {
		return nil, shapef(p, "%v", err)
	}

	return out, nil
}
