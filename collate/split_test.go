// SPDX-License-Identifier: MIT

package collate_test

import (
	"testing"

	"github.com/katalvlaran/tinyspace/collate"
	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplit_InvertsCollate: Split(Collate(vs)) gives vs back, leaves as arrays.
func TestSplit_InvertsCollate(t *testing.T) {
	vs := []any{
		map[string]any{"a": int64(0), "b": []any{[]float32{1, 2}}, "e": map[string]any{}},
		map[string]any{"a": int64(1), "b": []any{[]float32{3, 4}}, "e": map[string]any{}},
		map[string]any{"a": int64(2), "b": []any{[]float32{5, 6}}, "e": map[string]any{}},
	}
	batched, err := collate.Collate(vs)
	require.NoError(t, err)

	parts, err := collate.Split(batched)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	for i, p := range parts {
		m := p.(map[string]any)
		a := m["a"].(*ndarray.Array)
		assert.Equal(t, 0, a.NDim())
		item, _ := a.Item()
		assert.Equal(t, float64(i), item)

		b := m["b"].([]any)[0].(*ndarray.Array)
		assert.Equal(t, ndarray.Float32, b.DType())
		assert.Equal(t, []float64{float64(2*i + 1), float64(2*i + 2)}, b.Data())
		assert.Equal(t, map[string]any{}, m["e"])
	}

	// Leafless containers are copied per element.
	parts[0].(map[string]any)["e"].(map[string]any)["x"] = 1
	assert.Empty(t, parts[1].(map[string]any)["e"])
}

// TestSplit_Errors: no batch axis, inconsistent batch sizes, no leaves.
func TestSplit_Errors(t *testing.T) {
	_, err := collate.Split(int64(3))
	assert.ErrorIs(t, err, collate.ErrShape)

	_, err = collate.Split(map[string]any{"a": []int64{1, 2}, "b": []int64{1, 2, 3}})
	require.ErrorIs(t, err, collate.ErrShape)
	assert.Contains(t, err.Error(), "b:")

	_, err = collate.Split([]any{"nope"})
	assert.ErrorIs(t, err, collate.ErrShape)

	_, err = collate.Split(map[string]any{"a": []any{}})
	assert.ErrorIs(t, err, collate.ErrEmpty)
}
