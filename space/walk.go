// SPDX-License-Identifier: MIT
// Package space: deterministic traversal, rendering and size helpers.
//
// Determinism:
//   - Walk visits nodes pre-order; Dict children in iteration order, Tuple
//     children by index. The same descriptor always yields the same sequence.

package space

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tinyspace/ndarray"
)

// PathElem is one step from a composite to a child: a Dict key or a Tuple index.
type PathElem struct {
	Key   string
	Index int
	IsKey bool
}

// Path locates a node inside a descriptor (or a value shaped like one).
// The root is the empty path.
type Path []PathElem

// Key returns a copy of p extended with a Dict key.
func (p Path) Key(k string) Path {
	return append(append(Path(nil), p...), PathElem{Key: k, IsKey: true})
}

// Index returns a copy of p extended with a Tuple position.
func (p Path) Index(i int) Path {
	return append(append(Path(nil), p...), PathElem{Index: i})
}

// String renders p as "obs.rgb[0]"; the root renders as ".".
func (p Path) String() string {
	if len(p) == 0 {
		return "."
	}
	var sb strings.Builder
	for i, e := range p {
		if e.IsKey {
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(e.Key)
			continue
		}
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(e.Index))
		sb.WriteByte(']')
	}

	return sb.String()
}

// WalkFunc is called for every node of a descriptor. Returning a non-nil
// error stops the walk and Walk returns that error.
type WalkFunc func(p Path, s *Space) error

// Walk visits s and all its descendants pre-order.
func Walk(s *Space, fn WalkFunc) error {
	return walk(nil, s, fn)
}

func walk(p Path, s *Space, fn WalkFunc) error {
	if err := fn(p, s); err != nil {
		return err
	}
	switch s.kind {
	case KindDict:
		for _, f := range s.dict.fields {
			if err := walk(p.Key(f.Key), f.Space, fn); err != nil {
				return err
			}
		}
	case KindTuple:
		for i, c := range s.tuple.children {
			if err := walk(p.Index(i), c, fn); err != nil {
				return err
			}
		}
	}

	return nil
}

// Leaf pairs a leaf descriptor with its location.
type Leaf struct {
	Path  Path
	Space *Space
}

// Leaves returns every leaf of s in Walk order. A leaf root yields itself.
func Leaves(s *Space) []Leaf {
	var out []Leaf
	_ = Walk(s, func(p Path, n *Space) error {
		if n.kind.IsLeaf() {
			out = append(out, Leaf{Path: p, Space: n})
		}
		return nil
	})

	return out
}

// FlatDim returns the length of the flat one-hot/concatenated encoding of s:
// Box = prod(shape), Discrete = n, MultiDiscrete = sum(nvec), composites sum
// their children.
func FlatDim(s *Space) int {
	switch s.kind {
	case KindBox:
		return s.box.Len()
	case KindDiscrete:
		return s.disc.n
	case KindMultiDiscrete:
		total := 0
		for _, c := range s.multi.nvec {
			total += c
		}
		return total
	case KindDict:
		total := 0
		for _, f := range s.dict.fields {
			total += FlatDim(f.Space)
		}
		return total
	case KindTuple:
		total := 0
		for _, c := range s.tuple.children {
			total += FlatDim(c)
		}
		return total
	default:
		return 0
	}
}

// String renders s in the familiar gym notation, e.g.
// Dict("a": Discrete(2), "b": Box(-1, 1, (2,), float32)).
func (s *Space) String() string {
	var sb strings.Builder
	writeSpace(&sb, s)

	return sb.String()
}

func writeSpace(sb *strings.Builder, s *Space) {
	switch s.kind {
	case KindBox:
		sb.WriteString("Box(")
		writeBound(sb, s.box.low)
		sb.WriteString(", ")
		writeBound(sb, s.box.high)
		sb.WriteString(", ")
		sb.WriteString(ndarray.FormatShape(s.box.shape))
		sb.WriteString(", ")
		sb.WriteString(s.box.dtype.String())
		sb.WriteByte(')')
	case KindDiscrete:
		sb.WriteString("Discrete(")
		sb.WriteString(strconv.Itoa(s.disc.n))
		sb.WriteByte(')')
	case KindMultiDiscrete:
		sb.WriteString("MultiDiscrete([")
		for i, c := range s.multi.nvec {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(c))
		}
		sb.WriteString("])")
	case KindDict:
		sb.WriteString("Dict(")
		for i, f := range s.dict.fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(f.Key))
			sb.WriteString(": ")
			writeSpace(sb, f.Space)
		}
		sb.WriteByte(')')
	case KindTuple:
		sb.WriteString("Tuple(")
		for i, c := range s.tuple.children {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeSpace(sb, c)
		}
		sb.WriteByte(')')
	default:
		sb.WriteString("Invalid")
	}
}

func writeBound(sb *strings.Builder, b Bound) {
	if b.IsScalar() {
		sb.WriteString(FormatNumber(b.vals[0]))
		return
	}
	sb.WriteByte('[')
	for i, v := range b.vals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(FormatNumber(v))
	}
	sb.WriteByte(']')
}

// FormatNumber renders a bound value with the shortest exact decimal form
// and numpy's spelling of infinities ("inf", "-inf").
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
