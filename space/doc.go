// SPDX-License-Identifier: MIT

// Package space defines the Space descriptor: an immutable description of
// the shape, dtype and bounds of an observation or action value.
//
// A *Space is a tagged union over five kinds:
//
//	KindBox           continuous (or integer) n-d leaf with elementwise bounds
//	KindDiscrete      scalar categorical leaf, values in [0, n)
//	KindMultiDiscrete vector of independent categorical leaves
//	KindDict          string-keyed composite (insertion order kept for iteration)
//	KindTuple         positional composite
//
// Each component that works on descriptors (the validator here, and the
// sample, collate and bridge packages) dispatches with an exhaustive switch on
// Kind instead of methods on the variants, so adding an operation touches one
// file.
//
// Construction validates every invariant and fails with ErrInvalidSpace;
// nothing is mutated afterwards, so descriptors are safe to share between
// goroutines without locking.
//
// Validation of values:
//
//	ok := space.Conforms(s, value)   // pure predicate
//	err := space.Mismatch(s, value)  // nil, or ErrMismatch naming the failing path
//
// Value representation: leaves are *ndarray.Array or anything ndarray.From
// accepts (Go scalars, typed flat slices); Dict values are map[string]any;
// Tuple values are []any.
package space
