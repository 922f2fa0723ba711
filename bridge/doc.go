// SPDX-License-Identifier: MIT

// Package bridge converts space descriptors to and from their external
// representations.
//
// Three boundaries are covered:
//
//   - Literals: plain nested maps and slices as produced by a JSON, YAML or
//     TOML decoder. A mapping with a string "cls" key, or with a "shape" key
//     holding a sequence, is a leaf; any other mapping is a Dict (keys sorted)
//     and any sequence is a Tuple. FromLiteral parses, ToLiteral renders the
//     canonical form, and FromLiteral(ToLiteral(s)) is always equal to s.
//   - Foreign space objects (package gymspaces): FromGym dispatches on the
//     foreign concrete type through a read-only table built once at package
//     initialisation; ToGym rebuilds the foreign object with expanded bounds.
//   - Values: DecodeValue turns a decoded value literal into the value tree a
//     descriptor expects, EncodeValue renders a value tree for output.
//
// Leaf literal fields:
//
//	cls             "box" (default when only shape is given), "discrete", "multi_discrete"
//	shape           box only, list of positive integers, [] for a scalar
//	dtype           box only, default "float32"
//	low, high       box only, number, "inf"/"-inf" or a (nested) list; default per dtype
//	n               discrete only
//	nvec            multi_discrete only
//	desc            any leaf, free text
//
// Errors: malformed literals fail with ErrSpaceParse, foreign objects with no
// native counterpart with ErrUnsupportedSpace. Invariant violations found by
// the space constructors surface unchanged as space.ErrInvalidSpace.
package bridge
