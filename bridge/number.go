// SPDX-License-Identifier: MIT

package bridge

import (
	"math"
	"strings"

	"golang.org/x/exp/slices"
)

// toFloat accepts every numeric type a JSON/YAML/TOML decoder produces plus
// the infinity spellings "inf", "+inf", "-inf", ".inf", "-.inf", "infinity"
// and "nan".
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case int32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case uint:
		return float64(x), true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "inf", "+inf", ".inf", "+.inf", "infinity", "+infinity":
			return math.Inf(1), true
		case "-inf", "-.inf", "-infinity":
			return math.Inf(-1), true
		case "nan", ".nan":
			return math.NaN(), true
		}
	}

	return 0, false
}

// toInt accepts integral numbers only; 3.0 is fine, 3.5 and "3" are not.
func toInt(v any) (int, bool) {
	if _, ok := v.(string); ok {
		return 0, false
	}
	f, ok := toFloat(v)
	if !ok || math.IsInf(f, 0) || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}

	return int(f), true
}

// toInts converts a sequence literal of integers.
func toInts(v any) ([]int, bool) {
	xs, ok := asList(v)
	if !ok {
		return nil, false
	}
	out := make([]int, len(xs))
	for i, x := range xs {
		if out[i], ok = toInt(x); !ok {
			return nil, false
		}
	}

	return out, true
}

// asList accepts []any and the typed slices a caller may build by hand.
func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []int:
		return listOf(x), true
	case []int64:
		return listOf(x), true
	case []float64:
		return listOf(x), true
	case []string:
		return listOf(x), true
	default:
		return nil, false
	}
}

func listOf[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}

	return out
}

// flatten walks a (nested) numeric list in row-major order and returns its
// values and inferred shape. A bare number has shape (). Ragged nesting and
// non-numeric entries fail.
func flatten(v any) ([]float64, []int, bool) {
	xs, isList := asList(v)
	if !isList {
		f, ok := toFloat(v)
		if !ok {
			return nil, nil, false
		}
		return []float64{f}, []int{}, true
	}
	if len(xs) == 0 {
		return nil, []int{0}, true
	}
	var (
		data  []float64
		inner []int
	)
	for i, x := range xs {
		d, s, ok := flatten(x)
		if !ok {
			return nil, nil, false
		}
		if i == 0 {
			inner = s
		} else if !slices.Equal(s, inner) {
			return nil, nil, false
		}
		data = append(data, d...)
	}

	return data, append([]int{len(xs)}, inner...), true
}
