// SPDX-License-Identifier: MIT
// Package bridge: value literals.
//
// DecodeValue is deliberately lenient: it shapes a decoded literal after the
// descriptor where it can and otherwise keeps the literal's own structure,
// so that conformity questions are answered by space.Mismatch with a path
// rather than by a decode error. Only leaf entries that are not numbers at
// all fail with ErrSpaceParse.

package bridge

import (
	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DecodeValue turns a JSON/YAML/TOML-decoded value literal into a value
// tree for s: Box and MultiDiscrete leaves become arrays of the leaf dtype
// (float64 when an element does not fit it), Discrete leaves int64, Dicts
// map[string]any and Tuples []any.
func DecodeValue(s *space.Space, lit any) (any, error) {
	return decodeValue(nil, s, lit)
}

func decodeValue(p space.Path, s *space.Space, lit any) (any, error) {
	switch s.Kind() {
	case space.KindBox:
		b, _ := s.Box()
		return decodeArray(p, b.DType(), lit)
	case space.KindDiscrete:
		if _, isStr := lit.(string); isStr {
			return nil, parseErrorf(p, "want an integer, got %q", lit)
		}
		if n, ok := toInt(lit); ok {
			return int64(n), nil
		}
		return genericValue(p, lit)
	case space.KindMultiDiscrete:
		return decodeArray(p, ndarray.Int64, lit)
	case space.KindDict:
		m, ok := lit.(map[string]any)
		if !ok {
			return genericValue(p, lit)
		}
		d, _ := s.Dict()
		keys := maps.Keys(m)
		slices.Sort(keys)
		out := make(map[string]any, len(m))
		for _, k := range keys {
			var (
				v   any
				err error
			)
			if child, ok := d.Get(k); ok {
				v, err = decodeValue(p.Key(k), child, m[k])
			} else {
				v, err = genericValue(p.Key(k), m[k])
			}
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case space.KindTuple:
		xs, ok := asList(lit)
		if !ok {
			return genericValue(p, lit)
		}
		t, _ := s.Tuple()
		out := make([]any, len(xs))
		for i, x := range xs {
			var (
				v   any
				err error
			)
			if child := t.At(i); child != nil {
				v, err = decodeValue(p.Index(i), child, x)
			} else {
				v, err = genericValue(p.Index(i), x)
			}
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return nil, parseErrorf(p, "invalid space kind %s", s.Kind())
	}
}

// decodeArray builds a leaf array, falling back to float64 when a value
// cannot be held by dt and to the literal's own structure when it is not a
// rectangular numeric list.
func decodeArray(p space.Path, dt ndarray.DType, lit any) (any, error) {
	if dt == ndarray.Bool {
		lit = boolsToNumbers(lit)
	}
	vals, shape, ok := flatten(lit)
	if !ok {
		return genericValue(p, lit)
	}
	for _, v := range vals {
		if !dt.Representable(v) {
			dt = ndarray.Float64
			break
		}
	}
	a, err := ndarray.New(dt, shape, vals)
	if err != nil {
		return nil, parseErrorf(p, "%v", err)
	}

	return a, nil
}

func boolsToNumbers(v any) any {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case []any:
		out := make([]any, len(x))
		for i, c := range x {
			out[i] = boolsToNumbers(c)
		}
		return out
	default:
		return v
	}
}

// genericValue converts a literal with no descriptor guidance: numbers and
// rectangular numeric lists become float64 arrays, containers recurse and
// strings are rejected.
func genericValue(p space.Path, lit any) (any, error) {
	switch x := lit.(type) {
	case nil, bool:
		return lit, nil
	case string:
		if f, ok := toFloat(x); ok {
			return f, nil
		}
		return nil, parseErrorf(p, "unexpected string %q in a value", x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, c := range x {
			v, err := genericValue(p.Key(k), c)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	}
	if vals, shape, ok := flatten(lit); ok {
		a, err := ndarray.New(ndarray.Float64, shape, vals)
		if err != nil {
			return nil, parseErrorf(p, "%v", err)
		}
		return a, nil
	}
	xs, ok := asList(lit)
	if !ok {
		return lit, nil
	}
	out := make([]any, len(xs))
	for i, c := range xs {
		v, err := genericValue(p.Index(i), c)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// EncodeValue renders a value tree for output: arrays become nested lists
// (bools for bool dtype, integers for integer dtypes, "inf"/"-inf"/"nan"
// strings where JSON has no number), Dicts maps and Tuples []any. Go
// scalars and typed slices are encoded like the arrays they coerce to.
func EncodeValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, c := range x {
			out[k] = EncodeValue(c)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, c := range x {
			out[i] = EncodeValue(c)
		}
		return out
	}
	a, err := ndarray.From(v)
	if err != nil {
		return v
	}
	leaf := numberLiteral
	switch dt := a.DType(); {
	case dt == ndarray.Bool:
		leaf = func(f float64) any { return f != 0 }
	case dt.IsInteger():
		leaf = func(f float64) any { return int64(f) }
	}

	return nest(a.Data(), a.Shape(), leaf)
}
