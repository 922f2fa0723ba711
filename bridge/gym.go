// SPDX-License-Identifier: MIT
// Package bridge: foreign space objects <-> descriptors.
//
// Design:
//   - FromGym looks the foreign concrete type up in gymConverters, a map
//     from reflect.Type to converter filled once in init and only read
//     afterwards. Supporting a new foreign class is one more entry.
//   - ToGym is an exhaustive switch over space.Kind.
//   - Foreign classes without a native variant (MultiBinary, Text, Sequence,
//     Discrete with a non-zero start, multi-dimensional MultiDiscrete, a Box
//     dtype spelled other than its canonical name) fail with
//     ErrUnsupportedSpace instead of being approximated.

package bridge

import (
	"reflect"

	"github.com/katalvlaran/tinyspace/gymspaces"
	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
)

// gymDefaultIntDType is the foreign MultiDiscrete default dtype, the only
// one a descriptor can reproduce.
const gymDefaultIntDType = "int64"

type gymConverter func(p space.Path, g gymspaces.Space) (*space.Space, error)

// gymConverters is read-only after init. It cannot be a package-level map
// literal: the Dict and Tuple converters recurse through fromGym, which
// reads the map.
var gymConverters map[reflect.Type]gymConverter

func init() {
	gymConverters = map[reflect.Type]gymConverter{
		reflect.TypeOf((*gymspaces.Box)(nil)):           boxFromGym,
		reflect.TypeOf((*gymspaces.Discrete)(nil)):      discreteFromGym,
		reflect.TypeOf((*gymspaces.MultiDiscrete)(nil)): multiDiscreteFromGym,
		reflect.TypeOf((*gymspaces.Dict)(nil)):          dictFromGym,
		reflect.TypeOf((*gymspaces.Tuple)(nil)):         tupleFromGym,
	}
}

// FromGym converts a foreign space object into a descriptor.
//
// Errors: ErrUnsupportedSpace for nil, unknown or unmappable foreign
// objects; space.ErrInvalidSpace when the foreign object breaks a
// descriptor invariant (e.g. low > high).
func FromGym(g gymspaces.Space) (*space.Space, error) {
	return fromGym(nil, g)
}

func fromGym(p space.Path, g gymspaces.Space) (*space.Space, error) {
	if g == nil {
		return nil, unsupportedf(p, "nil space")
	}
	if v := reflect.ValueOf(g); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, unsupportedf(p, "nil space")
	}
	conv, ok := gymConverters[reflect.TypeOf(g)]
	if !ok {
		return nil, unsupportedf(p, "%s has no native counterpart", g.TypeName())
	}

	return conv(p, g)
}

func boxFromGym(p space.Path, g gymspaces.Space) (*space.Space, error) {
	b := g.(*gymspaces.Box)
	dtype, err := ndarray.ParseDType(b.Dtype)
	if err != nil || dtype.String() != b.Dtype {
		// aliases ("float", "np.float32") would come back canonical from ToGym
		return nil, unsupportedf(p, "Box dtype %q", b.Dtype)
	}
	s, err := space.NewBox(b.Shape, dtype, collapse(b.LowValues()), collapse(b.HighValues()))
	if err != nil {
		return nil, at(p, err)
	}

	return s, nil
}

// collapse turns a fully expanded foreign bound back into a scalar bound
// when every element is equal.
func collapse(vals []float64) space.Bound {
	if len(vals) == 0 {
		return space.Bound{}
	}
	b := space.ArrayBound(vals)
	if v, ok := b.Uniform(); ok {
		return space.ScalarBound(v)
	}

	return b
}

func discreteFromGym(p space.Path, g gymspaces.Space) (*space.Space, error) {
	d := g.(*gymspaces.Discrete)
	if d.Start != 0 {
		return nil, unsupportedf(p, "Discrete start %d, only 0 is representable", d.Start)
	}
	s, err := space.NewDiscrete(int(d.N))
	if err != nil {
		return nil, at(p, err)
	}

	return s, nil
}

func multiDiscreteFromGym(p space.Path, g gymspaces.Space) (*space.Space, error) {
	m := g.(*gymspaces.MultiDiscrete)
	if m.Shape != nil && len(m.Shape) != 1 {
		return nil, unsupportedf(p, "MultiDiscrete with %d-d nvec", len(m.Shape))
	}
	if m.Dtype != "" && m.Dtype != gymDefaultIntDType {
		return nil, unsupportedf(p, "MultiDiscrete dtype %q", m.Dtype)
	}
	nvec := make([]int, len(m.Nvec))
	for i, c := range m.Nvec {
		nvec[i] = int(c)
	}
	s, err := space.NewMultiDiscrete(nvec)
	if err != nil {
		return nil, at(p, err)
	}

	return s, nil
}

func dictFromGym(p space.Path, g gymspaces.Space) (*space.Space, error) {
	d := g.(*gymspaces.Dict)
	fields := make([]space.Field, len(d.Items))
	for i, it := range d.Items {
		child, err := fromGym(p.Key(it.Key), it.Space)
		if err != nil {
			return nil, err
		}
		fields[i] = space.Field{Key: it.Key, Space: child}
	}
	s, err := space.NewDict(fields)
	if err != nil {
		return nil, at(p, err)
	}

	return s, nil
}

func tupleFromGym(p space.Path, g gymspaces.Space) (*space.Space, error) {
	t := g.(*gymspaces.Tuple)
	children := make([]*space.Space, len(t.Spaces))
	for i, c := range t.Spaces {
		child, err := fromGym(p.Index(i), c)
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

// ToGym rebuilds the foreign object for s with fully expanded bounds, so that
// gymspaces.Equal(ToGym(FromGym(g)), g) holds for every supported g.
func ToGym(s *space.Space) (gymspaces.Space, error) {
	switch s.Kind() {
	case space.KindBox:
		b, _ := s.Box()
		n := b.Len()
		g, err := gymspaces.NewBox(b.Shape(), b.DType().String(), b.Low().Expand(n), b.High().Expand(n))
		if err != nil {
			return nil, unsupportedf(nil, "%v", err)
		}
		return g, nil
	case space.KindDiscrete:
		d, _ := s.Discrete()
		return &gymspaces.Discrete{N: int64(d.N())}, nil
	case space.KindMultiDiscrete:
		m, _ := s.MultiDiscrete()
		nvec := make([]int64, m.Len())
		for i, c := range m.NVec() {
			nvec[i] = int64(c)
		}
		return &gymspaces.MultiDiscrete{Nvec: nvec, Shape: []int{m.Len()}, Dtype: gymDefaultIntDType}, nil
	case space.KindDict:
		d, _ := s.Dict()
		out := &gymspaces.Dict{Items: make([]gymspaces.DictItem, d.Len())}
		for i, f := range d.Fields() {
			child, err := ToGym(f.Space)
			if err != nil {
				return nil, err
			}
			out.Items[i] = gymspaces.DictItem{Key: f.Key, Space: child}
		}
		return out, nil
	case space.KindTuple:
		t, _ := s.Tuple()
		out := &gymspaces.Tuple{Spaces: make([]gymspaces.Space, t.Len())}
		for i, c := range t.Spaces() {
			child, err := ToGym(c)
			if err != nil {
				return nil, err
			}
			out.Spaces[i] = child
		}
		return out, nil
	default:
		return nil, unsupportedf(nil, "invalid space kind %s", s.Kind())
	}
}
