// SPDX-License-Identifier: MIT
// Package collate_test: batching contract.
//
// Covers the shape law, the two boundary errors, dtype promotion, the strict
// WithSpace mode and the Split inverse.

package collate_test

import (
	"testing"

	"github.com/katalvlaran/tinyspace/collate"
	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustArr(t *testing.T, dt ndarray.DType, shape []int, data ...float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.New(dt, shape, data)
	require.NoError(t, err)

	return a
}

func repeat(v any, n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// TestCollate_ShapeLaw: Collate([v]*N) has leading dim N on every leaf and
// keeps v's structure.
func TestCollate_ShapeLaw(t *testing.T) {
	v := map[string]any{
		"pos":  mustArr(t, ndarray.Float32, []int{2, 3}, 1, 2, 3, 4, 5, 6),
		"mode": int64(2),
		"pair": []any{[]int8{1, 2}, true},
	}
	for _, n := range []int{1, 2, 7} {
		got, err := collate.Collate(repeat(v, n))
		require.NoError(t, err)

		m, ok := got.(map[string]any)
		require.True(t, ok)
		require.Len(t, m, 3)
		assert.Equal(t, []int{n, 2, 3}, m["pos"].(*ndarray.Array).Shape())
		assert.Equal(t, []int{n}, m["mode"].(*ndarray.Array).Shape())

		pair, ok := m["pair"].([]any)
		require.True(t, ok)
		require.Len(t, pair, 2)
		assert.Equal(t, []int{n, 2}, pair[0].(*ndarray.Array).Shape())
		assert.Equal(t, ndarray.Int8, pair[0].(*ndarray.Array).DType())
		assert.Equal(t, []int{n}, pair[1].(*ndarray.Array).Shape())
		assert.Equal(t, ndarray.Bool, pair[1].(*ndarray.Array).DType())
	}
}

// TestCollate_Empty: no reference structure to infer.
func TestCollate_Empty(t *testing.T) {
	_, err := collate.Collate(nil)
	assert.ErrorIs(t, err, collate.ErrEmpty)
	_, err = collate.Collate([]any{})
	assert.ErrorIs(t, err, collate.ErrEmpty)
}

// TestCollate_DictKeys: differing key sets fail, in both directions.
func TestCollate_DictKeys(t *testing.T) {
	a := map[string]any{"a": 1, "b": 2}
	_, err := collate.Collate([]any{a, map[string]any{"a": 1}})
	require.ErrorIs(t, err, collate.ErrShape)
	assert.Contains(t, err.Error(), `missing key "b"`)

	_, err = collate.Collate([]any{a, map[string]any{"a": 1, "b": 2, "c": 3}})
	require.ErrorIs(t, err, collate.ErrShape)
	assert.Contains(t, err.Error(), `unexpected key "c"`)

	_, err = collate.Collate([]any{a, map[string]any{"a": 1, "c": 2}})
	assert.ErrorIs(t, err, collate.ErrShape)
}

// TestCollate_Mismatch: every other kind of disagreement is ErrShape with a path.
func TestCollate_Mismatch(t *testing.T) {
	cases := []struct {
		name string
		vs   []any
		path string
	}{
		{"leaf shape", []any{[]float32{1, 2}, []float32{1, 2, 3}}, "."},
		{"tuple length", []any{[]any{1, 2}, []any{1}}, "."},
		{"container kind", []any{[]any{1}, map[string]any{"a": 1}}, "."},
		{"leaf vs container", []any{1, []any{1}}, "."},
		{"unsupported leaf", []any{"x", "y"}, "."},
		{"incompatible dtype", []any{[]int64{1}, []float32{1}}, "."},
		{"nested", []any{
			map[string]any{"obs": []any{1, []float32{0}}},
			map[string]any{"obs": []any{1, []float32{0, 0}}},
		}, "obs[1]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := collate.Collate(tc.vs)
			require.ErrorIs(t, err, collate.ErrShape)
			assert.Contains(t, err.Error(), tc.path+":")
		})
	}
}

// TestCollate_Promotion: safely castable dtypes share the wider dtype.
func TestCollate_Promotion(t *testing.T) {
	got, err := collate.Collate([]any{1, 2.5, int8(3)})
	require.NoError(t, err)
	a := got.(*ndarray.Array)
	assert.Equal(t, ndarray.Float64, a.DType())
	assert.Equal(t, []float64{1, 2.5, 3}, a.Data())
}

// TestCollate_TupleScenario: five (Discrete, Box) samples become a tuple of
// a (5,) array and a (5, 3) array.
func TestCollate_TupleScenario(t *testing.T) {
	vs := make([]any, 5)
	for i := range vs {
		vs[i] = []any{int64(i % 4), []float32{float32(i), 0, -1}}
	}
	got, err := collate.Collate(vs)
	require.NoError(t, err)

	tup, ok := got.([]any)
	require.True(t, ok)
	require.Len(t, tup, 2)
	first := tup[0].(*ndarray.Array)
	assert.Equal(t, []int{5}, first.Shape())
	assert.Equal(t, []float64{0, 1, 2, 3, 0}, first.Data())
	assert.Equal(t, []int{5, 3}, tup[1].(*ndarray.Array).Shape())
}

// TestCollate_WithSpace: the strict mode rejects values the inference mode
// would happily stack.
func TestCollate_WithSpace(t *testing.T) {
	s := space.Must(space.NewBox([]int{2}, ndarray.Float32, space.ScalarBound(0), space.ScalarBound(1)))
	vs := []any{[]float32{0, 1}, []float32{0.5, 2}}

	_, err := collate.Collate(vs)
	require.NoError(t, err)

	_, err = collate.Collate(vs, collate.WithSpace(s))
	require.ErrorIs(t, err, collate.ErrShape)
	assert.ErrorIs(t, err, space.ErrMismatch)
	assert.Contains(t, err.Error(), "element 1")

	assert.Panics(t, func() { collate.WithSpace(nil) })
}

// TestCollate_DoesNotAlias: the batch owns its storage.
func TestCollate_DoesNotAlias(t *testing.T) {
	src := []float64{1, 2}
	got, err := collate.Collate([]any{src, src})
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, []float64{1, 2, 1, 2}, got.(*ndarray.Array).Data())
}
