// SPDX-License-Identifier: MIT

package gymspaces

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Space is implemented by every mirrored space class.
type Space interface {
	// TypeName returns the foreign class name ("Box", "Discrete", ...).
	TypeName() string
}

// Box mirrors gym.spaces.Box. Low and High always hold prod(Shape) values in
// row-major order, as the foreign class stores them.
type Box struct {
	Shape []int
	Dtype string
	Low   *mat.VecDense
	High  *mat.VecDense
}

// NewBox builds a Box, broadcasting single-value low/high to prod(shape).
func NewBox(shape []int, dtype string, low, high []float64) (*Box, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("NewBox: dimension %d: %w", d, ErrMalformed)
		}
		if d > math.MaxInt/n {
			return nil, fmt.Errorf("NewBox: shape %v overflows int: %w", shape, ErrMalformed)
		}
		n *= d
	}
	lo, err := expand("low", low, n)
	if err != nil {
		return nil, err
	}
	hi, err := expand("high", high, n)
	if err != nil {
		return nil, err
	}

	return &Box{
		Shape: append([]int{}, shape...),
		Dtype: dtype,
		Low:   mat.NewVecDense(n, lo),
		High:  mat.NewVecDense(n, hi),
	}, nil
}

func expand(side string, vs []float64, n int) ([]float64, error) {
	switch len(vs) {
	case n:
		return append([]float64(nil), vs...), nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = vs[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("NewBox: %s has %d values, want 1 or %d: %w", side, len(vs), n, ErrMalformed)
	}
}

// LowValues returns a copy of the expanded lower bound.
func (b *Box) LowValues() []float64 { return vecValues(b.Low) }

// HighValues returns a copy of the expanded upper bound.
func (b *Box) HighValues() []float64 { return vecValues(b.High) }

func vecValues(v *mat.VecDense) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// Discrete mirrors gym.spaces.Discrete: values in [Start, Start+N).
type Discrete struct {
	N     int64
	Start int64
}

// MultiDiscrete mirrors gym.spaces.MultiDiscrete. Shape is the shape of
// Nvec; nil means one-dimensional. An empty Dtype means "int64".
type MultiDiscrete struct {
	Nvec  []int64
	Shape []int
	Dtype string
}

// MultiBinary mirrors gym.spaces.MultiBinary.
type MultiBinary struct {
	N []int
}

// Text mirrors gym.spaces.Text.
type Text struct {
	MinLength int
	MaxLength int
	Charset   string
}

// Sequence mirrors gym.spaces.Sequence.
type Sequence struct {
	Feature Space
	Stack   bool
}

// DictItem is one ordered entry of a Dict.
type DictItem struct {
	Key   string
	Space Space
}

// Dict mirrors gym.spaces.Dict with its insertion order.
type Dict struct {
	Items []DictItem
}

// Get returns the child stored under key, or nil.
func (d *Dict) Get(key string) Space {
	for _, it := range d.Items {
		if it.Key == key {
			return it.Space
		}
	}

	return nil
}

// Tuple mirrors gym.spaces.Tuple.
type Tuple struct {
	Spaces []Space
}

func (*Box) TypeName() string           { return "Box" }
func (*Discrete) TypeName() string      { return "Discrete" }
func (*MultiDiscrete) TypeName() string { return "MultiDiscrete" }
func (*MultiBinary) TypeName() string   { return "MultiBinary" }
func (*Text) TypeName() string          { return "Text" }
func (*Sequence) TypeName() string      { return "Sequence" }
func (*Dict) TypeName() string          { return "Dict" }
func (*Tuple) TypeName() string         { return "Tuple" }

// EnvSpaces is the (observation, action) pair an environment exposes.
type EnvSpaces struct {
	Observation Space
	Action      Space
}
