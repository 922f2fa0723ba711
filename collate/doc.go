// SPDX-License-Identifier: MIT

// Package collate stacks a batch of values with identical structure into one
// value whose leaves carry a new leading batch axis, and splits such a batch
// back into its elements.
//
// Structure is inferred from the first element:
//
//	leaf (any value ndarray.From accepts)  ndarray.Stack over the batch
//	map[string]any                         collated per key
//	[]any                                  collated per position
//
// Every element must match the first one exactly (same key sets, tuple
// lengths, leaf shapes and dtypes); otherwise Collate fails with ErrShape and
// the path of the first offending node. WithSpace switches to a stricter mode
// that validates each element against a descriptor before stacking.
//
// Split is the inverse: Split(Collate(vs)) reproduces vs with every leaf
// returned as an *ndarray.Array.
package collate
