// SPDX-License-Identifier: MIT

package gymspaces_test

import (
	"testing"

	"github.com/katalvlaran/tinyspace/gymspaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewBox broadcasts scalars and rejects bad lengths.
func TestNewBox(t *testing.T) {
	b := mustBox(t, []int{3}, "int8", []float64{-2}, []float64{1, 2, 3})
	assert.Equal(t, []float64{-2, -2, -2}, b.LowValues())
	assert.Equal(t, []float64{1, 2, 3}, b.HighValues())

	_, err := gymspaces.NewBox([]int{3}, "int8", []float64{0, 0}, []float64{1})
	assert.ErrorIs(t, err, gymspaces.ErrMalformed)
	_, err = gymspaces.NewBox([]int{0}, "int8", []float64{0}, []float64{1})
	assert.ErrorIs(t, err, gymspaces.ErrMalformed)
	_, err = gymspaces.NewBox([]int{1 << 62, 4}, "float32", []float64{0}, []float64{1})
	assert.ErrorIs(t, err, gymspaces.ErrMalformed)
}

// TestEqual checks the per-class equality rules.
func TestEqual(t *testing.T) {
	a := mustBox(t, []int{2}, "float32", []float64{0}, []float64{1})
	b := mustBox(t, []int{2}, "float32", []float64{0, 0}, []float64{1, 1})
	c := mustBox(t, []int{2}, "float64", []float64{0}, []float64{1})
	assert.True(t, gymspaces.Equal(a, b))
	assert.False(t, gymspaces.Equal(a, c))
	assert.False(t, gymspaces.Equal(a, &gymspaces.Discrete{N: 2}))

	assert.False(t, gymspaces.Equal(&gymspaces.Discrete{N: 2}, &gymspaces.Discrete{N: 2, Start: 1}))
	assert.True(t, gymspaces.Equal(
		&gymspaces.MultiDiscrete{Nvec: []int64{2, 3}},
		&gymspaces.MultiDiscrete{Nvec: []int64{2, 3}, Shape: []int{2}}))

	d1 := &gymspaces.Dict{Items: []gymspaces.DictItem{{Key: "x", Space: a}, {Key: "y", Space: c}}}
	d2 := &gymspaces.Dict{Items: []gymspaces.DictItem{{Key: "y", Space: c}, {Key: "x", Space: b}}}
	assert.True(t, gymspaces.Equal(d1, d2), "dict order is ignored")

	t1 := &gymspaces.Tuple{Spaces: []gymspaces.Space{a, c}}
	t2 := &gymspaces.Tuple{Spaces: []gymspaces.Space{c, a}}
	assert.False(t, gymspaces.Equal(t1, t2), "tuple order matters")

	assert.True(t, gymspaces.Equal(nil, nil))
	assert.False(t, gymspaces.Equal(a, nil))
	require.Nil(t, d1.Get("missing"))
}
