// SPDX-License-Identifier: MIT

package sample

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tinyspace/collate"
	"github.com/katalvlaran/tinyspace/ndarray"
	"github.com/katalvlaran/tinyspace/space"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// maxExactSpan is the largest integer span drawn with exact integer
// arithmetic; wider int64 boxes fall back to a floored uniform draw.
const maxExactSpan = 1 << 53

// Sampler draws values conforming to space descriptors from its own source.
type Sampler struct {
	cfg config
	rng *rand.Rand

	uniform distuv.Uniform
	normal  distuv.Normal
	expo    distuv.Exponential
}

// New returns a Sampler configured by opts.
func New(opts ...Option) *Sampler {
	cfg := newConfig(opts)

	return &Sampler{
		cfg:     cfg,
		rng:     rand.New(cfg.src),
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: cfg.src},
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: cfg.src},
		expo:    distuv.Exponential{Rate: 1, Src: cfg.src},
	}
}

// Sample draws one value from s with a throwaway Sampler built from opts.
func Sample(s *space.Space, opts ...Option) (any, error) {
	return New(opts...).Sample(s)
}

// Sample draws one value conforming to s (or, with WithBatch(n), n values
// collated along a new leading axis).
//
// Errors: ErrNilSpace for a nil descriptor, ErrInvalidSpace for a zero one.
func (sp *Sampler) Sample(s *space.Space) (any, error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	if sp.cfg.batch == 0 {
		return sp.draw(s)
	}
	values := make([]any, sp.cfg.batch)
	for i := range values {
		v, err := sp.draw(s)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return collate.Collate(values)
}

func (sp *Sampler) draw(s *space.Space) (any, error) {
	switch s.Kind() {
	case space.KindBox:
		b, _ := s.Box()
		return sp.box(b)
	case space.KindDiscrete:
		d, _ := s.Discrete()
		if sp.cfg.zeros {
			return int64(0), nil
		}
		return sp.rng.Int63n(int64(d.N())), nil
	case space.KindMultiDiscrete:
		m, _ := s.MultiDiscrete()
		nvec := m.NVec()
		data := make([]float64, len(nvec))
		if !sp.cfg.zeros {
			for i, c := range nvec {
				data[i] = float64(sp.rng.Int63n(int64(c)))
			}
		}
		return ndarray.New(ndarray.Int64, []int{len(nvec)}, data)
	case space.KindDict:
		d, _ := s.Dict()
		out := make(map[string]any, d.Len())
		for _, f := range d.Fields() {
			v, err := sp.draw(f.Space)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Key, err)
			}
			out[f.Key] = v
		}
		return out, nil
	case space.KindTuple:
		t, _ := s.Tuple()
		out := make([]any, t.Len())
		for i, c := range t.Spaces() {
			v, err := sp.draw(c)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	default:
		return nil, ErrInvalidSpace
	}
}

func (sp *Sampler) box(b *space.Box) (*ndarray.Array, error) {
	dt := b.DType()
	data := make([]float64, b.Len())
	for i := range data {
		lo, hi := b.BoundsAt(i)
		var v float64
		switch {
		case sp.cfg.zeros:
			v = clamp(0, lo, hi)
		case dt.IsFloat():
			v = sp.continuous(lo, hi)
		default:
			v = sp.integer(lo, hi)
		}
		data[i] = clamp(dt.Round(v), lo, hi)
	}

	return ndarray.New(dt, b.Shape(), data)
}

// continuous draws one float element; see the package doc for the
// distribution chosen per bound combination.
func (sp *Sampler) continuous(lo, hi float64) float64 {
	finiteLo, finiteHi := !math.IsInf(lo, 0), !math.IsInf(hi, 0)
	switch {
	case finiteLo && finiteHi:
		if lo == hi {
			return lo
		}
		if math.IsInf(hi-lo, 0) {
			// the span overflows float64; interpolate instead
			u := sp.rng.Float64()
			return lo*(1-u) + hi*u
		}
		sp.uniform.Min, sp.uniform.Max = lo, hi
		return sp.uniform.Rand()
	case finiteLo:
		return lo + sp.expo.Rand()
	case finiteHi:
		return hi - sp.expo.Rand()
	default:
		return sp.normal.Rand()
	}
}

// integer draws a uniform integer in [lo, hi]; integer and bool boxes always
// have finite integral bounds.
func (sp *Sampler) integer(lo, hi float64) float64 {
	span := hi - lo
	if span < maxExactSpan {
		return lo + float64(sp.rng.Uint64n(uint64(span)+1))
	}
	sp.uniform.Min, sp.uniform.Max = lo, hi

	return math.Floor(sp.uniform.Rand())
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
