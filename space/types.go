// SPDX-License-Identifier: MIT
// Package space: the descriptor tagged union and its per-kind payloads.
//
// Design:
//   - Space carries a Kind tag and exactly one non-nil payload pointer.
//   - Payloads have unexported fields; accessors return copies so a built
//     descriptor can never be modified through its API.
//   - Box bounds are stored unexpanded (see Bound).

package space

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/ndarray"
)

// Kind tags the variant held by a Space.
type Kind uint8

const (
	// KindInvalid is the zero Kind; a zero Space is never valid.
	KindInvalid Kind = iota
	KindBox
	KindDiscrete
	KindMultiDiscrete
	KindDict
	KindTuple
)

var kindNames = [...]string{
	KindInvalid:       "Invalid",
	KindBox:           "Box",
	KindDiscrete:      "Discrete",
	KindMultiDiscrete: "MultiDiscrete",
	KindDict:          "Dict",
	KindTuple:         "Tuple",
}

// String returns the variant name (Box, Discrete, ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsLeaf reports whether k has no children.
func (k Kind) IsLeaf() bool {
	return k == KindBox || k == KindDiscrete || k == KindMultiDiscrete
}

// IsComposite reports whether k has children.
func (k Kind) IsComposite() bool { return k == KindDict || k == KindTuple }

// Space is an immutable space descriptor. Build one with NewBox,
// NewDiscrete, NewMultiDiscrete, NewDict, NewDictFromMap or NewTuple.
type Space struct {
	kind Kind
	desc string

	box   *Box
	disc  *Discrete
	multi *MultiDiscrete
	dict  *Dict
	tuple *Tuple
}

// Kind returns the variant tag.
func (s *Space) Kind() Kind { return s.kind }

// Desc returns the optional free-text description set with WithDesc.
func (s *Space) Desc() string { return s.desc }

// Box returns the Box payload when Kind()==KindBox.
func (s *Space) Box() (*Box, bool) { return s.box, s.kind == KindBox }

// Discrete returns the Discrete payload when Kind()==KindDiscrete.
func (s *Space) Discrete() (*Discrete, bool) { return s.disc, s.kind == KindDiscrete }

// MultiDiscrete returns the MultiDiscrete payload when Kind()==KindMultiDiscrete.
func (s *Space) MultiDiscrete() (*MultiDiscrete, bool) { return s.multi, s.kind == KindMultiDiscrete }

// Dict returns the Dict payload when Kind()==KindDict.
func (s *Space) Dict() (*Dict, bool) { return s.dict, s.kind == KindDict }

// Tuple returns the Tuple payload when Kind()==KindTuple.
func (s *Space) Tuple() (*Tuple, bool) { return s.tuple, s.kind == KindTuple }

// Shape returns the shape of a leaf descriptor. Composites have no single
// shape: ok is false and callers must recurse into the children instead.
func (s *Space) Shape() (shape []int, ok bool) {
	switch s.kind {
	case KindBox:
		return s.box.Shape(), true
	case KindDiscrete:
		return []int{}, true
	case KindMultiDiscrete:
		return []int{len(s.multi.nvec)}, true
	default:
		return nil, false
	}
}

// Box is the payload of a continuous or integer n-d leaf.
type Box struct {
	shape []int
	dtype ndarray.DType
	low   Bound
	high  Bound
}

// Shape returns a copy of the dimensions (empty for a scalar box).
func (b *Box) Shape() []int { return append([]int{}, b.shape...) }

// DType returns the element type.
func (b *Box) DType() ndarray.DType { return b.dtype }

// Low returns the lower bound as stored (scalar or elementwise).
func (b *Box) Low() Bound { return b.low }

// High returns the upper bound as stored (scalar or elementwise).
func (b *Box) High() Bound { return b.high }

// Len returns the number of elements prod(shape).
func (b *Box) Len() int {
	n := 1
	for _, d := range b.shape {
		n *= d
	}

	return n
}

// BoundsAt returns the broadcast (low, high) pair for flat element i.
func (b *Box) BoundsAt(i int) (lo, hi float64) { return b.low.At(i), b.high.At(i) }

// Discrete is the payload of a scalar categorical leaf with values in [0, n).
type Discrete struct {
	n int
}

// N returns the number of categories.
func (d *Discrete) N() int { return d.n }

// MultiDiscrete is the payload of a vector of categorical leaves; position i
// takes values in [0, nvec[i]).
type MultiDiscrete struct {
	nvec []int
}

// NVec returns a copy of the per-position category counts.
func (m *MultiDiscrete) NVec() []int { return append([]int(nil), m.nvec...) }

// Len returns the number of positions.
func (m *MultiDiscrete) Len() int { return len(m.nvec) }

// Field is one (key, child) entry of a Dict.
type Field struct {
	Key   string
	Space *Space
}

// Dict is the payload of a string-keyed composite. Iteration follows
// construction order; equality ignores it.
type Dict struct {
	fields []Field
	index  map[string]int
}

// Len returns the number of keys.
func (d *Dict) Len() int { return len(d.fields) }

// Keys returns the keys in iteration order.
func (d *Dict) Keys() []string {
	keys := make([]string, len(d.fields))
	for i, f := range d.fields {
		keys[i] = f.Key
	}

	return keys
}

// Fields returns a copy of the (key, child) entries in iteration order.
func (d *Dict) Fields() []Field { return append([]Field(nil), d.fields...) }

// Get returns the child stored under key.
func (d *Dict) Get(key string) (*Space, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}

	return d.fields[i].Space, true
}

// Tuple is the payload of a positional composite.
type Tuple struct {
	children []*Space
}

// Len returns the number of positions.
func (t *Tuple) Len() int { return len(t.children) }

// At returns the i-th child, or nil when i is out of range.
func (t *Tuple) At(i int) *Space {
	if i < 0 || i >= len(t.children) {
		return nil
	}

	return t.children[i]
}

// Spaces returns a copy of the children in order.
func (t *Tuple) Spaces() []*Space { return append([]*Space(nil), t.children...) }
