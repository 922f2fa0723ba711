// SPDX-License-Identifier: MIT

package space

import (
	"math"

	"github.com/katalvlaran/tinyspace/ndarray"
)

// Bound is one side (low or high) of a Box's interval.
//
// A Bound holds either a single value that broadcasts to every element of
// the box, or one value per element in row-major order. Scalars are kept
// unexpanded; At applies the broadcast on read. The zero Bound is "unset" and
// makes NewBox fall back to DefaultBounds.
type Bound struct {
	vals []float64
}

// ScalarBound returns a bound that broadcasts v to every element.
func ScalarBound(v float64) Bound { return Bound{vals: []float64{v}} }

// ArrayBound returns an elementwise bound (copied). Its length must equal the
// box's element count at construction time.
func ArrayBound(vs []float64) Bound { return Bound{vals: append([]float64(nil), vs...)} }

// Unbounded returns the (-Inf, +Inf) scalar pair.
func Unbounded() (low, high Bound) {
	return ScalarBound(math.Inf(-1)), ScalarBound(math.Inf(1))
}

// DefaultBounds returns the bounds used for an unset side: (-Inf, +Inf) for
// floating dtypes, the representable range for integer dtypes, [0, 1] for bool.
func DefaultBounds(dtype ndarray.DType) (low, high Bound) {
	if dtype.IsFloat() {
		return Unbounded()
	}
	lo, hi := dtype.Range()

	return ScalarBound(lo), ScalarBound(hi)
}

// IsSet reports whether the bound carries any value.
func (b Bound) IsSet() bool { return len(b.vals) > 0 }

// IsScalar reports whether the bound is a single broadcast value.
func (b Bound) IsScalar() bool { return len(b.vals) == 1 }

// Len returns the number of stored values (1 for scalars).
func (b Bound) Len() int { return len(b.vals) }

// Values returns a copy of the stored values.
func (b Bound) Values() []float64 { return append([]float64(nil), b.vals...) }

// At returns the value for flat element i, broadcasting scalars.
func (b Bound) At(i int) float64 {
	if len(b.vals) == 1 {
		return b.vals[0]
	}

	return b.vals[i]
}

// Expand returns n values with scalars broadcast.
func (b Bound) Expand(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = b.At(i)
	}

	return out
}

// Uniform reports whether every stored value is identical, in which case
// the bound is equivalent to ScalarBound(v).
func (b Bound) Uniform() (v float64, ok bool) {
	if len(b.vals) == 0 {
		return 0, false
	}
	v = b.vals[0]
	for _, x := range b.vals[1:] {
		if x != v {
			return 0, false
		}
	}

	return v, true
}
