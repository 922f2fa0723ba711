// SPDX-License-Identifier: MIT
// Package bridge: literal codecs.
//
// Contract:
//   - DecodeLiteral turns bytes into plain maps, slices and scalars with
//     string keys everywhere; decoder failures are ErrSpaceParse.
//   - Parse* = DecodeLiteral + FromLiteral; Marshal* = ToLiteral +
//     EncodeLiteral. The output of Marshal* parses back to an equal
//     descriptor with the matching Parse*.

package bridge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/katalvlaran/tinyspace/space"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a literal encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks a format from a file extension (.json, .yaml, .yml, .toml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("FormatOf(%q): unknown extension: %w", path, ErrSpaceParse)
	}
}

// DecodeLiteral decodes data in format f into a literal. TOML documents are
// tables, so a TOML literal is always a map.
func DecodeLiteral(f Format, data []byte) (any, error) {
	switch f {
	case FormatJSON:
		var lit any
		if err := json.Unmarshal(data, &lit); err != nil {
			return nil, fmt.Errorf("decode json: %v: %w", err, ErrSpaceParse)
		}
		return lit, nil
	case FormatYAML:
		var lit any
		if err := yaml.Unmarshal(data, &lit); err != nil {
			return nil, fmt.Errorf("decode yaml: %v: %w", err, ErrSpaceParse)
		}
		return normalizeYAML(nil, lit)
	case FormatTOML:
		var lit map[string]any
		if err := toml.Unmarshal(data, &lit); err != nil {
			return nil, fmt.Errorf("decode toml: %v: %w", err, ErrSpaceParse)
		}
		if lit == nil {
			lit = map[string]any{}
		}
		return lit, nil
	default:
		return nil, fmt.Errorf("unknown format %q: %w", f, ErrSpaceParse)
	}
}

// normalizeYAML rewrites map[any]any (mappings with non-string keys at
// decode time) into map[string]any, failing on keys that are not strings.
func normalizeYAML(p space.Path, v any) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		for k, c := range x {
			n, err := normalizeYAML(p.Key(k), c)
			if err != nil {
				return nil, err
			}
			x[k] = n
		}
		return x, nil
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, c := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, parseErrorf(p, "mapping key %v is not a string", k)
			}
			n, err := normalizeYAML(p.Key(ks), c)
			if err != nil {
				return nil, err
			}
			out[ks] = n
		}
		return out, nil
	case []any:
		for i, c := range x {
			n, err := normalizeYAML(p.Index(i), c)
			if err != nil {
				return nil, err
			}
			x[i] = n
		}
		return x, nil
	default:
		return v, nil
	}
}

// EncodeLiteral encodes a literal in format f: indented JSON, block YAML or
// TOML. TOML needs a map at the root and fails with ErrSpaceParse otherwise.
func EncodeLiteral(f Format, lit any) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(lit, "", "  ")
	case FormatYAML:
		return yaml.Marshal(lit)
	case FormatTOML:
		m, ok := lit.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("encode toml: %T root has no TOML form: %w", lit, ErrSpaceParse)
		}
		return toml.Marshal(m)
	default:
		return nil, fmt.Errorf("unknown format %q: %w", f, ErrSpaceParse)
	}
}

// Parse decodes a literal schema in format f.
func Parse(f Format, data []byte) (*space.Space, error) {
	lit, err := DecodeLiteral(f, data)
	if err != nil {
		return nil, err
	}

	return FromLiteral(lit)
}

// ParseJSON parses a JSON literal schema.
func ParseJSON(data []byte) (*space.Space, error) { return Parse(FormatJSON, data) }

// ParseYAML parses a YAML literal schema. Unquoted .inf/-.inf are accepted
// as bounds alongside the string spellings.
func ParseYAML(data []byte) (*space.Space, error) { return Parse(FormatYAML, data) }

// ParseTOML parses a TOML literal schema; the root is a Dict or a leaf.
func ParseTOML(data []byte) (*space.Space, error) { return Parse(FormatTOML, data) }

// Marshal encodes the canonical literal of s in format f.
func Marshal(f Format, s *space.Space) ([]byte, error) {
	return EncodeLiteral(f, ToLiteral(s))
}

// MarshalJSON renders the canonical literal of s as indented JSON.
func MarshalJSON(s *space.Space) ([]byte, error) { return Marshal(FormatJSON, s) }

// MarshalYAML renders the canonical literal of s as YAML.
func MarshalYAML(s *space.Space) ([]byte, error) { return Marshal(FormatYAML, s) }

// MarshalTOML renders the canonical literal of s as TOML. A Tuple root has
// no TOML form and fails with ErrSpaceParse.
func MarshalTOML(s *space.Space) ([]byte, error) { return Marshal(FormatTOML, s) }

// ReadLiteral reads a file and decodes it by extension.
func ReadLiteral(path string) (any, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lit, err := DecodeLiteral(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lit, nil
}

// LoadFile reads and parses a literal schema, choosing the codec by extension.
func LoadFile(path string) (*space.Space, error) {
	lit, err := ReadLiteral(path)
	if err != nil {
		return nil, err
	}
	s, err := FromLiteral(lit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
