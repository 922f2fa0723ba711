// SPDX-License-Identifier: MIT
// Package gymspaces: JSON dump format.
//
// Decoding peeks at the "type" discriminator with gjson before unmarshalling
// the body into the matching wire struct, so an unknown class is reported as
// ErrUnknownType without guessing at its fields.

package gymspaces

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// floatList encodes infinities and NaN as strings, which JSON numbers cannot hold.
type floatList []float64

func (f floatList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		switch {
		case math.IsInf(v, 1):
			buf.WriteString(`"inf"`)
		case math.IsInf(v, -1):
			buf.WriteString(`"-inf"`)
		case math.IsNaN(v):
			buf.WriteString(`"nan"`)
		default:
			buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

func (f *floatList) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]float64, len(raw))
	for i, r := range raw {
		switch x := r.(type) {
		case float64:
			out[i] = x
		case string:
			v, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return fmt.Errorf("bound %d: %q is not a number", i, x)
			}
			out[i] = v
		default:
			return fmt.Errorf("bound %d: %v is not a number", i, r)
		}
	}
	*f = out

	return nil
}

type boxWire struct {
	Type  string    `json:"type"`
	Shape []int     `json:"shape"`
	Dtype string    `json:"dtype"`
	Low   floatList `json:"low"`
	High  floatList `json:"high"`
}

type discreteWire struct {
	Type  string `json:"type"`
	N     int64  `json:"n"`
	Start int64  `json:"start"`
}

type multiDiscreteWire struct {
	Type  string  `json:"type"`
	Nvec  []int64 `json:"nvec"`
	Shape []int   `json:"shape,omitempty"`
	Dtype string  `json:"dtype,omitempty"`
}

type multiBinaryWire struct {
	Type string `json:"type"`
	N    []int  `json:"n"`
}

type textWire struct {
	Type      string `json:"type"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
	Charset   string `json:"charset,omitempty"`
}

type sequenceWire struct {
	Type    string          `json:"type"`
	Feature json.RawMessage `json:"feature_space"`
	Stack   bool            `json:"stack,omitempty"`
}

type dictItemWire struct {
	Key   string          `json:"key"`
	Space json.RawMessage `json:"space"`
}

type dictWire struct {
	Type   string         `json:"type"`
	Spaces []dictItemWire `json:"spaces"`
}

type tupleWire struct {
	Type   string            `json:"type"`
	Spaces []json.RawMessage `json:"spaces"`
}

// Marshal encodes s in the tagged dump format.
func Marshal(s Space) ([]byte, error) {
	switch x := s.(type) {
	case *Box:
		return json.Marshal(boxWire{
			Type: x.TypeName(), Shape: x.Shape, Dtype: x.Dtype,
			Low: x.LowValues(), High: x.HighValues(),
		})
	case *Discrete:
		return json.Marshal(discreteWire{Type: x.TypeName(), N: x.N, Start: x.Start})
	case *MultiDiscrete:
		return json.Marshal(multiDiscreteWire{Type: x.TypeName(), Nvec: x.Nvec, Shape: x.Shape, Dtype: x.Dtype})
	case *MultiBinary:
		return json.Marshal(multiBinaryWire{Type: x.TypeName(), N: x.N})
	case *Text:
		return json.Marshal(textWire{Type: x.TypeName(), MinLength: x.MinLength, MaxLength: x.MaxLength, Charset: x.Charset})
	case *Sequence:
		feat, err := Marshal(x.Feature)
		if err != nil {
			return nil, err
		}
		return json.Marshal(sequenceWire{Type: x.TypeName(), Feature: feat, Stack: x.Stack})
	case *Dict:
		w := dictWire{Type: x.TypeName(), Spaces: make([]dictItemWire, len(x.Items))}
		for i, it := range x.Items {
			raw, err := Marshal(it.Space)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", it.Key, err)
			}
			w.Spaces[i] = dictItemWire{Key: it.Key, Space: raw}
		}
		return json.Marshal(w)
	case *Tuple:
		w := tupleWire{Type: x.TypeName(), Spaces: make([]json.RawMessage, len(x.Spaces))}
		for i, c := range x.Spaces {
			raw, err := Marshal(c)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			w.Spaces[i] = raw
		}
		return json.Marshal(w)
	case nil:
		return nil, fmt.Errorf("Marshal: nil space: %w", ErrMalformed)
	default:
		return nil, fmt.Errorf("Marshal: %T: %w", s, ErrUnknownType)
	}
}

// Unmarshal decodes one space from the tagged dump format.
//
// Errors: ErrUnknownType for an unrecognised "type"; ErrMalformed for invalid
// JSON, a missing "type" or a body that does not fit its type.
func Unmarshal(data []byte) (Space, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("Unmarshal: invalid JSON: %w", ErrMalformed)
	}
	typ := gjson.GetBytes(data, "type")
	if !typ.Exists() {
		return nil, fmt.Errorf("Unmarshal: missing \"type\": %w", ErrMalformed)
	}

	return decode(typ.String(), data)
}

func malformed(name string, err error) error {
	return fmt.Errorf("Unmarshal %s: %v: %w", name, err, ErrMalformed)
}

func decode(name string, data []byte) (Space, error) {
	switch name {
	case "Box":
		var w boxWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, malformed(name, err)
		}
		b, err := NewBox(w.Shape, w.Dtype, w.Low, w.High)
		if err != nil {
			return nil, malformed(name, err)
		}
		return b, nil
	case "Discrete":
		if !gjson.GetBytes(data, "n").Exists() {
			return nil, malformed(name, fmt.Errorf("missing \"n\""))
		}
		var w discreteWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, malformed(name, err)
		}
		return &Discrete{N: w.N, Start: w.Start}, nil
	case "MultiDiscrete":
		var w multiDiscreteWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, malformed(name, err)
		}
		return &MultiDiscrete{Nvec: w.Nvec, Shape: w.Shape, Dtype: w.Dtype}, nil
	case "MultiBinary":
		var w multiBinaryWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, malformed(name, err)
		}
		return &MultiBinary{N: w.N}, nil
	case "Text":
		var w textWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, malformed(name, err)
		}
		return &Text{MinLength: w.MinLength, MaxLength: w.MaxLength, Charset: w.Charset}, nil
	case "Sequence":
		var w sequenceWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, malformed(name, err)
		}
		feat, err := Unmarshal(w.Feature)
		if err != nil {
			return nil, err
		}
		return &Sequence{Feature: feat, Stack: w.Stack}, nil
	case "Dict":
		var w dictWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, malformed(name, err)
		}
		d := &Dict{Items: make([]DictItem, len(w.Spaces))}
		for i, it := range w.Spaces {
			child, err := Unmarshal(it.Space)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", it.Key, err)
			}
			d.Items[i] = DictItem{Key: it.Key, Space: child}
		}
		return d, nil
	case "Tuple":
		var w tupleWire
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, malformed(name, err)
		}
		t := &Tuple{Spaces: make([]Space, len(w.Spaces))}
		for i, raw := range w.Spaces {
			child, err := Unmarshal(raw)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			t.Spaces[i] = child
		}
		return t, nil
	default:
		return nil, fmt.Errorf("Unmarshal: %q: %w", name, ErrUnknownType)
	}
}

// MarshalEnv encodes an environment's space pair as
// {"observation_space": ..., "action_space": ...}.
func MarshalEnv(env EnvSpaces) ([]byte, error) {
	obs, err := Marshal(env.Observation)
	if err != nil {
		return nil, fmt.Errorf("observation_space: %w", err)
	}
	act, err := Marshal(env.Action)
	if err != nil {
		return nil, fmt.Errorf("action_space: %w", err)
	}

	out := []byte(`{}`)
	if out, err = sjson.SetRawBytes(out, "observation_space", obs); err != nil {
		return nil, err
	}

	return sjson.SetRawBytes(out, "action_space", act)
}

// UnmarshalEnv decodes the output of MarshalEnv.
func UnmarshalEnv(data []byte) (EnvSpaces, error) {
	if !gjson.ValidBytes(data) {
		return EnvSpaces{}, fmt.Errorf("UnmarshalEnv: invalid JSON: %w", ErrMalformed)
	}
	var env EnvSpaces
	for _, f := range []struct {
		key string
		dst *Space
	}{
		{"observation_space", &env.Observation},
		{"action_space", &env.Action},
	} {
		r := gjson.GetBytes(data, f.key)
		if !r.Exists() {
			return EnvSpaces{}, fmt.Errorf("UnmarshalEnv: missing %q: %w", f.key, ErrMalformed)
		}
		s, err := Unmarshal([]byte(r.Raw))
		if err != nil {
			return EnvSpaces{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = s
	}

	return env, nil
}
