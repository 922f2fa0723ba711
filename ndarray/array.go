// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide an n-dimensional generalisation of a flat row-major buffer with
//     the offset formula sum(idx[k] * stride[k]).
//   - Guarantee safety at the public surface: At/AtFlat return errors instead
//     of panicking.
//   - Keep arrays immutable: constructors copy, accessors copy.
//
// Complexity quicksheet:
//   - New/Zeros/Full: O(n) copy or fill; At/AtFlat: O(ndim); Data: O(n);
//     Take: O(n / shape[0]).

package ndarray

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxFull   = "Full"
	ctxAt     = "At"
	ctxAtFlat = "AtFlat"
	ctxTake   = "Take"
)

// Array is an immutable n-dimensional numeric value.
//   - shape holds the dimensions; an empty shape is a 0-d scalar with one element.
//   - data is a flat buffer of length prod(shape) in row-major order.
//   - dtype constrains which values data may contain (see DType.Representable).
type Array struct {
	shape []int
	dtype DType
	data  []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array)(nil)

// NumElements returns prod(shape), or ErrBadShape if any dimension is
// negative or the product overflows int. The empty shape has one element.
func NumElements(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, ErrBadShape
		}
		if n > 0 && d > math.MaxInt/n {
			return 0, fmt.Errorf("shape %v overflows int: %w", shape, ErrBadShape)
		}
		n *= d
	}

	return n, nil
}

// New creates an array of the given dtype and shape holding a copy of data.
//
// Errors:
//   - ErrUnknownDType if dtype is not one of the concrete dtypes.
//   - ErrBadShape on a negative dimension.
//   - ErrDataLength if len(data) != prod(shape).
//   - ErrNotRepresentable if an element cannot be held by dtype.
//
// Complexity: O(n).
func New(dtype DType, shape []int, data []float64) (*Array, error) {
	if !dtype.Valid() {
		return nil, arrayErrorf(ctxNew, ErrUnknownDType)
	}
	n, err := NumElements(shape)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	if len(data) != n {
		return nil, arrayErrorf(ctxNew, ErrDataLength)
	}
	for i, v := range data {
		if !dtype.Representable(v) {
			return nil, fmt.Errorf("%s: element %d (%v as %s): %w", ctxNew, i, v, dtype, ErrNotRepresentable)
		}
	}

	return newUnchecked(dtype, shape, append([]float64(nil), data...)), nil
}

// newUnchecked wraps already-validated parts without copying data.
// Callers inside the package must hand over ownership of data.
func newUnchecked(dtype DType, shape []int, data []float64) *Array {
	return &Array{
		shape: append([]int(nil), shape...),
		dtype: dtype,
		data:  data,
	}
}

// Zeros returns a zero-filled array (false for Bool).
// Complexity: O(n).
func Zeros(dtype DType, shape []int) (*Array, error) {
	return Full(dtype, shape, 0)
}

// Full returns an array with every element set to v.
// v must be representable in dtype.
// Complexity: O(n).
func Full(dtype DType, shape []int, v float64) (*Array, error) {
	if !dtype.Valid() {
		return nil, arrayErrorf(ctxFull, ErrUnknownDType)
	}
	n, err := NumElements(shape)
	if err != nil {
		return nil, arrayErrorf(ctxFull, err)
	}
	if !dtype.Representable(v) {
		return nil, arrayErrorf(ctxFull, ErrNotRepresentable)
	}
	buf := make([]float64, n)
	if v != 0 {
		for i := range buf {
			buf[i] = v
		}
	}

	return newUnchecked(dtype, shape, buf), nil
}

// Scalar returns a 0-d array holding v.
func Scalar(dtype DType, v float64) (*Array, error) {
	return New(dtype, nil, []float64{v})
}

// Shape returns a copy of the dimensions. A 0-d array returns an empty slice.
func (a *Array) Shape() []int { return append([]int{}, a.shape...) }

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Len returns the total element count prod(shape).
func (a *Array) Len() int { return len(a.data) }

// Data returns a copy of the flat row-major buffer.
// Complexity: O(n).
func (a *Array) Data() []float64 { return append([]float64(nil), a.data...) }

// Item returns the single element of an array with exactly one element.
// The boolean is false for any other size.
func (a *Array) Item() (float64, bool) {
	if len(a.data) != 1 {
		return 0, false
	}

	return a.data[0], true
}

// AtFlat returns the element at flat row-major offset i.
func (a *Array) AtFlat(i int) (float64, error) {
	if i < 0 || i >= len(a.data) {
		return 0, fmt.Errorf("%s(%d): %w", ctxAtFlat, i, ErrOutOfRange)
	}

	return a.data[i], nil
}

// At returns the element at the multi-index idx; len(idx) must equal NDim.
//
// Complexity: O(ndim).
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != len(a.shape) {
		return 0, arrayErrorf(ctxAt, ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("%s%v: %w", ctxAt, idx, ErrOutOfRange)
		}
		// Horner form of sum(idx[k] * stride[k]).
		off = off*a.shape[k] + i
	}

	return a.data[off], nil
}

// Take returns a copy of the i-th sub-array along axis 0.
// The result has shape shape[1:]; 0-d arrays have no axis to take from.
//
// Complexity: O(n / shape[0]).
func (a *Array) Take(i int) (*Array, error) {
	if len(a.shape) == 0 {
		return nil, arrayErrorf(ctxTake, ErrBadShape)
	}
	if i < 0 || i >= a.shape[0] {
		return nil, fmt.Errorf("%s(%d): %w", ctxTake, i, ErrOutOfRange)
	}
	step := 1
	for _, d := range a.shape[1:] {
		step *= d
	}
	buf := append([]float64(nil), a.data[i*step:(i+1)*step]...)

	return newUnchecked(a.dtype, a.shape[1:], buf), nil
}

// Nested returns the elements as nested []any following the shape, with
// float64 leaves (integral dtypes hold integral values). A 0-d array returns
// a bare float64. Intended for encoders.
func (a *Array) Nested() any {
	if len(a.shape) == 0 {
		return a.data[0]
	}
	var build func(dim, off int) ([]any, int)
	build = func(dim, off int) ([]any, int) {
		out := make([]any, a.shape[dim])
		for i := range out {
			if dim == len(a.shape)-1 {
				out[i] = a.data[off]
				off++
				continue
			}
			out[i], off = build(dim+1, off)
		}
		return out, off
	}
	out, _ := build(0, 0)

	return out
}

// Equal reports whether a and b have the same dtype, shape and elements.
// NaN elements compare equal to NaN at the same position.
func Equal(a, b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dtype != b.dtype || !SameShape(a.shape, b.shape) {
		return false
	}

	return floats.Same(a.data, b.data)
}

// SameShape reports whether two shapes are identical.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// FormatShape renders a shape in tuple notation: (), (3,), (2, 3).
func FormatShape(shape []int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, d := range shape {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(d))
	}
	if len(shape) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')

	return sb.String()
}

// String renders the array as array([...], dtype=..., shape=...).
func (a *Array) String() string {
	return fmt.Sprintf("array(%v, dtype=%s, shape=%s)", a.Nested(), a.dtype, FormatShape(a.shape))
}
