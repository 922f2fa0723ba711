// SPDX-License-Identifier: MIT

package collate

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Split undoes Collate: it takes element i of every leaf along axis 0 and
// rebuilds the i-th value of the batch. Every leaf must share the same
// leading dimension.
//
// Errors:
//   - ErrShape for a 0-d leaf, a non-leaf non-container value, or leaves
//     with differing batch sizes.
//   - ErrEmpty when batched holds no leaf, so the batch size is unknown.
func Split(batched any) ([]any, error) {
	parts, err := split(nil, batched)
	if err != nil {
		return nil, err
	}
	if parts == nil {
		return nil, fmt.Errorf("Split: no leaves: %w", ErrEmpty)
	}

	return parts, nil
}

// split returns nil (and no error) for a container without leaves.
func split(p space.Path, v any) ([]any, error) {
	switch x := v.(type) {
	case map[string]any:
		keys := maps.Keys(x)
		slices.Sort(keys)
		cols := make(map[string][]any, len(x))
		n := -1
		for _, k := range keys {
			col, err := split(p.Key(k), x[k])
			if err != nil {
				return nil, err
			}
			if col == nil {
				continue
			}
			if n >= 0 && len(col) != n {
				return nil, shapef(p.Key(k), "batch size %d, want %d", len(col), n)
			}
			n = len(col)
			cols[k] = col
		}
		if n < 0 {
			return nil, nil
		}
		out := make([]any, n)
		for i := range out {
			m := make(map[string]any, len(x))
			for _, k := range keys {
				if col, ok := cols[k]; ok {
					m[k] = col[i]
				} else {
					m[k] = hollow(x[k])
				}
			}
			out[i] = m
		}
		return out, nil
	case []any:
		cols := make([][]any, len(x))
		n := -1
		for j, c := range x {
			col, err := split(p.Index(j), c)
			if err != nil {
				return nil, err
			}
			if col == nil {
				continue
			}
			if n >= 0 && len(col) != n {
				return nil, shapef(p.Index(j), "batch size %d, want %d", len(col), n)
			}
			n = len(col)
			cols[j] = col
		}
		if n < 0 {
			return nil, nil
		}
		out := make([]any, n)
		for i := range out {
			t := make([]any, len(x))
			for j := range x {
				if cols[j] != nil {
					t[j] = cols[j][i]
				} else {
					t[j] = hollow(x[j])
				}
			}
			out[i] = t
		}
		return out, nil
	default:
		a, err := ndarray.From(v)
		if err != nil {
			return nil, shapef(p, "%v", err)
		}
		if a.NDim() == 0 {
			return nil, shapef(p, "0-d leaf has no batch axis")
		}
		out := make([]any, a.Shape()[0])
		for i := range out {
			if out[i], err = a.Take(i); err != nil {
				return nil, shapef(p, "%v", err)
			}
		}
		return out, nil
	}
}

// hollow copies a leafless container so split elements never share maps.
func hollow(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, c := range x {
			m[k] = hollow(c)
		}
		return m
	case []any:
		t := make([]any, len(x))
		for i, c := range x {
			t[i] = hollow(c)
		}
		return t
	default:
		return v
	}
}
