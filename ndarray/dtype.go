// SPDX-License-Identifier: MIT
// Package ndarray - element types.
//
// Purpose:
//   - Name the closed dtype set once and keep every dtype rule (range,
//     integrality, casting) in this file.
//
// Determinism:
//   - All helpers are pure table lookups; no allocation.

package ndarray

import (
	"math"
	"strings"
)

// DType enumerates the element types an Array (and a Box space) may carry.
// The zero value is Invalid so an uninitialised DType never passes validation.
type DType uint8

const (
	// Invalid is the zero DType.
	Invalid DType = iota
	Float32
	Float64
	Int8
	Int16
	Int32
	Int64
	Uint8
	Bool
)

// dtypeNames is indexed by DType; keep in enum order.
var dtypeNames = [...]string{
	Invalid: "invalid",
	Float32: "float32",
	Float64: "float64",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Bool:    "bool",
}

// dtypeAliases maps the spellings accepted by ParseDType to canonical values.
// numpy's "float" and "int" resolve to their 64-bit forms.
var dtypeAliases = map[string]DType{
	"float32": Float32,
	"float64": Float64,
	"float":   Float64,
	"double":  Float64,
	"int8":    Int8,
	"int16":   Int16,
	"int32":   Int32,
	"int64":   Int64,
	"int":     Int64,
	"uint8":   Uint8,
	"bool":    Bool,
	"bool_":   Bool,
}

// DTypes lists every valid dtype in declaration order.
func DTypes() []DType {
	return []DType{Float32, Float64, Int8, Int16, Int32, Int64, Uint8, Bool}
}

// ParseDType resolves a dtype name. Leading "np." / "numpy." prefixes and
// surrounding whitespace are ignored; matching is case-insensitive.
// Returns ErrUnknownDType for anything outside the closed set.
func ParseDType(name string) (DType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "numpy.")
	n = strings.TrimPrefix(n, "np.")
	if dt, ok := dtypeAliases[n]; ok {
		return dt, nil
	}

	return Invalid, arrayErrorf("ParseDType("+name+")", ErrUnknownDType)
}

// Valid reports whether d is one of the eight concrete dtypes.
func (d DType) Valid() bool { return d >= Float32 && d <= Bool }

// String returns the canonical lower-case name.
func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}

	return "invalid"
}

// IsFloat reports whether d is a floating-point dtype.
func (d DType) IsFloat() bool { return d == Float32 || d == Float64 }

// IsInteger reports whether d is a signed or unsigned integer dtype (bool excluded).
func (d DType) IsInteger() bool { return d >= Int8 && d <= Uint8 }

// Range returns the closed interval of finite values representable by d.
// For integer dtypes the bounds are exact, except Int64's upper bound, which is
// the largest float64 below 2^63.
func (d DType) Range() (lo, hi float64) {
	switch d {
	case Float32:
		return -math.MaxFloat32, math.MaxFloat32
	case Float64:
		return -math.MaxFloat64, math.MaxFloat64
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	case Int64:
		// float64(MaxInt64) rounds up to 2^63, which int64 cannot hold
		return math.MinInt64, math.Nextafter(1<<63, 0)
	case Uint8:
		return 0, math.MaxUint8
	case Bool:
		return 0, 1
	default:
		return 0, 0
	}
}

// Representable reports whether v can be stored in d without loss of meaning:
// floats accept any value (NaN and ±Inf included) within float32 range for
// Float32; integer dtypes need an integral value inside Range; Bool needs 0 or 1.
func (d DType) Representable(v float64) bool {
	switch {
	case d.IsFloat():
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
		lo, hi := d.Range()
		return v >= lo && v <= hi
	case d.IsInteger() || d == Bool:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return false
		}
		lo, hi := d.Range()
		return v >= lo && v <= hi
	default:
		return false
	}
}

// Round snaps v to the nearest value d can hold: float32 rounding for
// Float32, truncation toward zero for integer dtypes, v != 0 for Bool.
// Values outside Range are clamped. Float64 is the identity.
func (d DType) Round(v float64) float64 {
	switch d {
	case Float64:
		return v
	case Float32:
		return float64(float32(v))
	case Bool:
		if v != 0 && !math.IsNaN(v) {
			return 1
		}
		return 0
	}
	if !d.IsInteger() || math.IsNaN(v) {
		return 0
	}
	lo, hi := d.Range()
	return math.Max(lo, math.Min(hi, math.Trunc(v)))
}

// safeCasts lists, per source dtype, the targets reachable by numpy's "safe"
// casting rule restricted to the closed dtype set.
var safeCasts = map[DType][]DType{
	Bool:    {Bool, Uint8, Int8, Int16, Int32, Int64, Float32, Float64},
	Uint8:   {Uint8, Int16, Int32, Int64, Float32, Float64},
	Int8:    {Int8, Int16, Int32, Int64, Float32, Float64},
	Int16:   {Int16, Int32, Int64, Float32, Float64},
	Int32:   {Int32, Int64, Float64},
	Int64:   {Int64, Float64},
	Float32: {Float32, Float64},
	Float64: {Float64},
}

// CanCast reports whether every value of dtype from is exactly representable
// in dtype to (numpy "safe" casting).
func CanCast(from, to DType) bool {
	for _, t := range safeCasts[from] {
		if t == to {
			return true
		}
	}

	return false
}
