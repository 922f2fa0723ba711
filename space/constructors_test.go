// SPDX-License-Identifier: MIT
// Package space_test locks in constructor invariants and payload accessors.

package space_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBox_Valid checks storage of scalar and elementwise bounds.
func TestNewBox_Valid(t *testing.T) {
	s, err := space.NewBox([]int{3}, ndarray.Float32, space.ScalarBound(-1), space.ScalarBound(1))
	require.NoError(t, err)
	assert.Equal(t, space.KindBox, s.Kind())

	b, ok := s.Box()
	require.True(t, ok)
	assert.Equal(t, []int{3}, b.Shape())
	assert.Equal(t, ndarray.Float32, b.DType())
	assert.True(t, b.Low().IsScalar(), "scalar bounds stay unexpanded")
	lo, hi := b.BoundsAt(2)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)

	s, err = space.NewBox([]int{2}, ndarray.Int32,
		space.ArrayBound([]float64{0, -5}), space.ArrayBound([]float64{3, 5}))
	require.NoError(t, err)
	b, _ = s.Box()
	lo, hi = b.BoundsAt(1)
	assert.Equal(t, -5.0, lo)
	assert.Equal(t, 5.0, hi)
}

// TestNewBox_Defaults covers unset bounds per dtype family.
func TestNewBox_Defaults(t *testing.T) {
	s := space.Must(space.NewBox([]int{2}, ndarray.Float64, space.Bound{}, space.Bound{}))
	b, _ := s.Box()
	lo, hi := b.BoundsAt(0)
	assert.True(t, math.IsInf(lo, -1))
	assert.True(t, math.IsInf(hi, 1))

	s = space.Must(space.NewBox(nil, ndarray.Uint8, space.Bound{}, space.Bound{}))
	b, _ = s.Box()
	lo, hi = b.BoundsAt(0)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 255.0, hi)

	s = space.Must(space.NewBox([]int{1}, ndarray.Bool, space.Bound{}, space.Bound{}))
	b, _ = s.Box()
	_, hi = b.BoundsAt(0)
	assert.Equal(t, 1.0, hi)
}

// TestNewBox_ShapeOverflow: a shape whose element count wraps int is rejected.
func TestNewBox_ShapeOverflow(t *testing.T) {
	_, err := space.NewBox([]int{1 << 62, 4}, ndarray.Float32, space.ScalarBound(-1), space.ScalarBound(1))
	assert.ErrorIs(t, err, space.ErrInvalidSpace)
	_, err = space.NewBox([]int{math.MaxInt, 2}, ndarray.Float64, space.Bound{}, space.Bound{})
	assert.ErrorIs(t, err, space.ErrInvalidSpace)
}

// TestNewBox_ScalarBoundsLargeShape: scalar bounds are checked and compared
// once, not per element.
func TestNewBox_ScalarBoundsLargeShape(t *testing.T) {
	shape := []int{1 << 20, 1 << 20}
	a, err := space.NewBox(shape, ndarray.Float32, space.ScalarBound(-1), space.ScalarBound(1))
	require.NoError(t, err)
	b := space.Must(space.NewBox(shape, ndarray.Float32, space.ScalarBound(-1), space.ScalarBound(1)))
	c := space.Must(space.NewBox(shape, ndarray.Float32, space.ScalarBound(-1), space.ScalarBound(2)))
	assert.True(t, space.Equal(a, b))
	assert.False(t, space.Equal(a, c))

	_, err = space.NewBox(shape, ndarray.Float32, space.ScalarBound(1), space.ScalarBound(-1))
	assert.ErrorIs(t, err, space.ErrInvalidSpace)
}

// TestNewBox_Invalid covers each ErrInvalidSpace branch.
func TestNewBox_Invalid(t *testing.T) {
	low, high := space.Unbounded()
	cases := map[string]func() (*space.Space, error){
		"zero dim": func() (*space.Space, error) {
			return space.NewBox([]int{2, 0}, ndarray.Float32, low, high)
		},
		"negative dim": func() (*space.Space, error) {
			return space.NewBox([]int{-1}, ndarray.Float32, low, high)
		},
		"unknown dtype": func() (*space.Space, error) {
			return space.NewBox([]int{1}, ndarray.Invalid, low, high)
		},
		"low > high": func() (*space.Space, error) {
			return space.NewBox([]int{2}, ndarray.Float32, space.ScalarBound(1), space.ScalarBound(0))
		},
		"elementwise low > high": func() (*space.Space, error) {
			return space.NewBox([]int{2}, ndarray.Float32,
				space.ArrayBound([]float64{0, 2}), space.ScalarBound(1))
		},
		"bound length": func() (*space.Space, error) {
			return space.NewBox([]int{3}, ndarray.Float32, space.ArrayBound([]float64{0, 0}), high)
		},
		"NaN": func() (*space.Space, error) {
			return space.NewBox([]int{1}, ndarray.Float64, space.ScalarBound(math.NaN()), high)
		},
		"infinite int bound": func() (*space.Space, error) {
			return space.NewBox([]int{1}, ndarray.Int32, low, space.ScalarBound(3))
		},
		"fractional int bound": func() (*space.Space, error) {
			return space.NewBox([]int{1}, ndarray.Int32, space.ScalarBound(0.5), space.ScalarBound(3))
		},
		"uint8 overflow": func() (*space.Space, error) {
			return space.NewBox([]int{1}, ndarray.Uint8, space.ScalarBound(0), space.ScalarBound(256))
		},
	}
	for name, build := range cases {
		s, err := build()
		assert.ErrorIs(t, err, space.ErrInvalidSpace, name)
		assert.Nil(t, s, name)
	}
}

// TestNewDiscrete_MultiDiscrete covers count invariants and shapes.
func TestNewDiscrete_MultiDiscrete(t *testing.T) {
	d, err := space.NewDiscrete(4)
	require.NoError(t, err)
	shape, ok := d.Shape()
	assert.True(t, ok)
	assert.Empty(t, shape)

	_, err = space.NewDiscrete(0)
	assert.ErrorIs(t, err, space.ErrInvalidSpace)

	m, err := space.NewMultiDiscrete([]int{2, 3, 4})
	require.NoError(t, err)
	shape, _ = m.Shape()
	assert.Equal(t, []int{3}, shape)
	md, _ := m.MultiDiscrete()
	assert.Equal(t, []int{2, 3, 4}, md.NVec())

	_, err = space.NewMultiDiscrete([]int{2, 0})
	assert.ErrorIs(t, err, space.ErrInvalidSpace)
	_, err = space.NewMultiDiscrete(nil)
	assert.ErrorIs(t, err, space.ErrInvalidSpace)
}

// TestNewDict_NewTuple covers composite structure checks and ordering.
func TestNewDict_NewTuple(t *testing.T) {
	a := space.Must(space.NewDiscrete(2))
	b := space.Must(space.NewMultiDiscrete([]int{3}))

	d, err := space.NewDict([]space.Field{{Key: "z", Space: a}, {Key: "a", Space: b}})
	require.NoError(t, err)
	dd, _ := d.Dict()
	assert.Equal(t, []string{"z", "a"}, dd.Keys(), "NewDict keeps insertion order")
	got, ok := dd.Get("a")
	assert.True(t, ok)
	assert.Same(t, b, got)
	_, ok = d.Shape()
	assert.False(t, ok, "composites have no single shape")

	m, err := space.NewDictFromMap(map[string]*space.Space{"z": a, "a": b})
	require.NoError(t, err)
	md, _ := m.Dict()
	assert.Equal(t, []string{"a", "z"}, md.Keys(), "NewDictFromMap sorts keys")

	_, err = space.NewDict([]space.Field{{Key: "x", Space: a}, {Key: "x", Space: b}})
	assert.ErrorIs(t, err, space.ErrInvalidSpace)
	_, err = space.NewDict([]space.Field{{Key: "", Space: a}})
	assert.ErrorIs(t, err, space.ErrInvalidSpace)
	_, err = space.NewDict([]space.Field{{Key: "x"}})
	assert.ErrorIs(t, err, space.ErrInvalidSpace)

	tp, err := space.NewTuple([]*space.Space{a, b})
	require.NoError(t, err)
	tt, _ := tp.Tuple()
	assert.Equal(t, 2, tt.Len())
	assert.Same(t, b, tt.At(1))
	assert.Nil(t, tt.At(2))

	_, err = space.NewTuple([]*space.Space{a, nil})
	assert.ErrorIs(t, err, space.ErrInvalidSpace)
}

// TestAccessors_Immutable ensures returned slices are copies.
func TestAccessors_Immutable(t *testing.T) {
	nvec := []int{2, 2}
	m := space.Must(space.NewMultiDiscrete(nvec))
	nvec[0] = 9
	md, _ := m.MultiDiscrete()
	got := md.NVec()
	assert.Equal(t, []int{2, 2}, got)
	got[1] = 7
	assert.Equal(t, []int{2, 2}, md.NVec())

	shape := []int{2}
	s := space.Must(space.NewBox(shape, ndarray.Float32, space.Bound{}, space.Bound{}))
	shape[0] = 5
	b, _ := s.Box()
	assert.Equal(t, []int{2}, b.Shape())
}

// TestWithDesc stores descriptions without affecting equality.
func TestWithDesc(t *testing.T) {
	a := space.Must(space.NewDiscrete(3, space.WithDesc("gripper")))
	b := space.Must(space.NewDiscrete(3))
	assert.Equal(t, "gripper", a.Desc())
	assert.True(t, space.Equal(a, b))
}

// TestMust_Panics documents the panic on construction failure.
func TestMust_Panics(t *testing.T) {
	assert.Panics(t, func() { space.Must(space.NewDiscrete(0)) })
}
