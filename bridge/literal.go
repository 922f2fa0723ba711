// SPDX-License-Identifier: MIT
// Package bridge: literal schema <-> descriptor.
//
// Determinism:
//   - Dict literals are Go maps, so FromLiteral builds Dicts in sorted key
//     order; equality ignores order, so the literal round trip is exact.

package bridge

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	clsBox      = "box"
	clsDiscrete = "discrete"
	clsMulti    = "multi_discrete"

	defaultDType = ndarray.Float32
)

// leafFields lists the keys each leaf class accepts.
var leafFields = map[string][]string{
	clsBox:      {"cls", "shape", "dtype", "low", "high", "desc"},
	clsDiscrete: {"cls", "n", "desc"},
	clsMulti:    {"cls", "nvec", "desc"},
}

// FromLiteral parses a literal schema (nested maps and sequences) into a
// descriptor. See the package documentation for the leaf fields.
func FromLiteral(lit any) (*space.Space, error) {
	return fromLiteral(nil, lit)
}

func fromLiteral(p space.Path, lit any) (*space.Space, error) {
	if m, ok := lit.(map[string]any); ok {
		if isLeafLiteral(m) {
			return leafFromLiteral(p, m)
		}
		keys := maps.Keys(m)
		slices.Sort(keys)
		fields := make([]space.Field, len(keys))
		for i, k := range keys {
			child, err := fromLiteral(p.Key(k), m[k])
			if err != nil {
				return nil, err
			}
			fields[i] = space.Field{Key: k, Space: child}
		}
		s, err := space.NewDict(fields)
		if err != nil {
			return nil, at(p, err)
		}
		return s, nil
	}
	if xs, ok := asList(lit); ok {
		children := make([]*space.Space, len(xs))
		for i, x := range xs {
			child, err := fromLiteral(p.Index(i), x)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		s, err := space.NewTuple(children)
		if err != nil {
			return nil, at(p, err)
		}
		return s, nil
	}

	return nil, parseErrorf(p, "want a mapping or a sequence, got %T", lit)
}

func isLeafLiteral(m map[string]any) bool {
	if _, ok := m["cls"].(string); ok {
		return true
	}
	_, ok := asList(m["shape"])

	return ok
}

func leafFromLiteral(p space.Path, m map[string]any) (*space.Space, error) {
	cls := clsBox
	if raw, ok := m["cls"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, parseErrorf(p, "cls must be a string, got %T", raw)
		}
		cls = s
	}
	allowed, ok := leafFields[cls]
	if !ok {
		return nil, parseErrorf(p, "unknown cls %q", cls)
	}
	keys := maps.Keys(m)
	slices.Sort(keys)
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			return nil, parseErrorf(p, "unknown field %q for %s", k, cls)
		}
	}
	var opts []space.Option
	if raw, ok := m["desc"]; ok {
		desc, ok := raw.(string)
		if !ok {
			return nil, parseErrorf(p, "desc must be a string, got %T", raw)
		}
		opts = append(opts, space.WithDesc(desc))
	}

	var (
		s   *space.Space
		err error
	)
	switch cls {
	case clsDiscrete:
		raw, ok := m["n"]
		if !ok {
			return nil, parseErrorf(p, "discrete needs n")
		}
		n, ok := toInt(raw)
		if !ok {
			return nil, parseErrorf(p, "n must be an integer, got %v", raw)
		}
		s, err = space.NewDiscrete(n, opts...)
	case clsMulti:
		raw, ok := m["nvec"]
		if !ok {
			return nil, parseErrorf(p, "multi_discrete needs nvec")
		}
		nvec, ok := toInts(raw)
		if !ok {
			return nil, parseErrorf(p, "nvec must be a list of integers, got %v", raw)
		}
		s, err = space.NewMultiDiscrete(nvec, opts...)
	default:
		return boxFromLiteral(p, m, opts)
	}
	if err != nil {
		return nil, at(p, err)
	}

	return s, nil
}

func boxFromLiteral(p space.Path, m map[string]any, opts []space.Option) (*space.Space, error) {
	raw, ok := m["shape"]
	if !ok {
		return nil, parseErrorf(p, "box needs shape")
	}
	shape, ok := toInts(raw)
	if !ok {
		return nil, parseErrorf(p, "shape must be a list of integers, got %v", raw)
	}
	dtype := defaultDType
	if raw, ok := m["dtype"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, parseErrorf(p, "dtype must be a string, got %T", raw)
		}
		dt, err := ndarray.ParseDType(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", p, err, ErrSpaceParse)
		}
		dtype = dt
	}
	low, err := boundFromLiteral(p, "low", m)
	if err != nil {
		return nil, err
	}
	high, err := boundFromLiteral(p, "high", m)
	if err != nil {
		return nil, err
	}
	s, err := space.NewBox(shape, dtype, low, high, opts...)
	if err != nil {
		return nil, at(p, err)
	}

	return s, nil
}

// boundFromLiteral reads one side; absent means unset (dtype default).
func boundFromLiteral(p space.Path, side string, m map[string]any) (space.Bound, error) {
	raw, ok := m[side]
	if !ok || raw == nil {
		return space.Bound{}, nil
	}
	vals, shape, ok := flatten(raw)
	if !ok {
		return space.Bound{}, parseErrorf(p, "%s must be a number, \"inf\"/\"-inf\" or a list of them, got %v", side, raw)
	}
	if len(shape) == 0 {
		return space.ScalarBound(vals[0]), nil
	}
	if len(vals) == 0 {
		return space.Bound{}, parseErrorf(p, "%s is an empty list", side)
	}

	return space.ArrayBound(vals), nil
}

// ToLiteral renders the canonical literal of s: scalar bounds stay scalar,
// elementwise bounds are nested by shape, infinities become "inf"/"-inf".
// Dicts become maps and Tuples []any; composite descriptions are not kept.
func ToLiteral(s *space.Space) any {
	switch s.Kind() {
	case space.KindBox:
		b, _ := s.Box()
		shape := b.Shape()
		lit := map[string]any{
			"cls":   clsBox,
			"shape": listOf(shape),
			"dtype": b.DType().String(),
			"low":   boundLiteral(b.Low(), shape),
			"high":  boundLiteral(b.High(), shape),
		}
		return withDesc(lit, s)
	case space.KindDiscrete:
		d, _ := s.Discrete()
		return withDesc(map[string]any{"cls": clsDiscrete, "n": d.N()}, s)
	case space.KindMultiDiscrete:
		md, _ := s.MultiDiscrete()
		return withDesc(map[string]any{"cls": clsMulti, "nvec": listOf(md.NVec())}, s)
	case space.KindDict:
		d, _ := s.Dict()
		out := make(map[string]any, d.Len())
		for _, f := range d.Fields() {
			out[f.Key] = ToLiteral(f.Space)
		}
		return out
	case space.KindTuple:
		t, _ := s.Tuple()
		out := make([]any, t.Len())
		for i, c := range t.Spaces() {
			out[i] = ToLiteral(c)
		}
		return out
	default:
		return nil
	}
}

func withDesc(lit map[string]any, s *space.Space) map[string]any {
	if d := s.Desc(); d != "" {
		lit["desc"] = d
	}

	return lit
}

func boundLiteral(b space.Bound, shape []int) any {
	if v, ok := b.Uniform(); ok {
		return numberLiteral(v)
	}

	return nest(b.Values(), shape, numberLiteral)
}

// numberLiteral spells infinities and NaN as strings, which JSON cannot encode.
func numberLiteral(v float64) any {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return v
	}
}

// nest reshapes flat row-major vals into nested []any following shape.
func nest(vals []float64, shape []int, leaf func(float64) any) any {
	if len(shape) == 0 {
		return leaf(vals[0])
	}
	out := make([]any, shape[0])
	if shape[0] == 0 {
		return out
	}
	step := len(vals) / shape[0]
	for i := range out {
		out[i] = nest(vals[i*step:(i+1)*step], shape[1:], leaf)
	}

	return out
}
