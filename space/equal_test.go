// SPDX-License-Identifier: MIT

package space_test

import (
	"testing"

	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
	"github.com/stretchr/testify/assert"
)

// TestEqual_Box compares bounds after broadcasting.
func TestEqual_Box(t *testing.T) {
	scalar := space.Must(space.NewBox([]int{3}, ndarray.Float32, space.ScalarBound(0), space.ScalarBound(1)))
	expanded := space.Must(space.NewBox([]int{3}, ndarray.Float32,
		space.ArrayBound([]float64{0, 0, 0}), space.ArrayBound([]float64{1, 1, 1})))
	otherDType := space.Must(space.NewBox([]int{3}, ndarray.Float64, space.ScalarBound(0), space.ScalarBound(1)))
	otherShape := space.Must(space.NewBox([]int{1, 3}, ndarray.Float32, space.ScalarBound(0), space.ScalarBound(1)))
	otherHigh := space.Must(space.NewBox([]int{3}, ndarray.Float32,
		space.ScalarBound(0), space.ArrayBound([]float64{1, 2, 1})))

	assert.True(t, space.Equal(scalar, expanded))
	assert.False(t, space.Equal(scalar, otherDType))
	assert.False(t, space.Equal(scalar, otherShape))
	assert.False(t, space.Equal(scalar, otherHigh))
}

// TestEqual_VariantAware ensures different kinds never compare equal.
func TestEqual_VariantAware(t *testing.T) {
	d := space.Must(space.NewDiscrete(3))
	m := space.Must(space.NewMultiDiscrete([]int{3}))
	assert.False(t, space.Equal(d, m))
	assert.True(t, space.Equal(d, space.Must(space.NewDiscrete(3))))
	assert.False(t, space.Equal(d, space.Must(space.NewDiscrete(4))))
	assert.False(t, space.Equal(d, nil))
	assert.True(t, space.Equal(nil, nil))
}

// TestEqual_Composites: Dict ignores key order, Tuple does not.
func TestEqual_Composites(t *testing.T) {
	a := space.Must(space.NewDiscrete(2))
	b := space.Must(space.NewMultiDiscrete([]int{2, 2}))

	d1 := space.Must(space.NewDict([]space.Field{{Key: "a", Space: a}, {Key: "b", Space: b}}))
	d2 := space.Must(space.NewDict([]space.Field{{Key: "b", Space: b}, {Key: "a", Space: a}}))
	d3 := space.Must(space.NewDict([]space.Field{{Key: "a", Space: a}}))
	assert.True(t, space.Equal(d1, d2))
	assert.False(t, space.Equal(d1, d3))

	t1 := space.Must(space.NewTuple([]*space.Space{a, b}))
	t2 := space.Must(space.NewTuple([]*space.Space{b, a}))
	assert.False(t, space.Equal(t1, t2))
	assert.True(t, space.Equal(t1, space.Must(space.NewTuple([]*space.Space{a, b}))))
}
