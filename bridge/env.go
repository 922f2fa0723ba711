// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/gymspaces"
	"github.com/katalvlaran/tinyspace/space"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EnvSpaces is the native counterpart of gymspaces.EnvSpaces.
type EnvSpaces struct {
	Observation *space.Space
	Action      *space.Space
}

// ConvertEnv converts both spaces of an environment. Nothing is returned
// unless both convert.
func ConvertEnv(env gymspaces.EnvSpaces) (EnvSpaces, error) {
	obs, err := FromGym(env.Observation)
	if err != nil {
		return EnvSpaces{}, fmt.Errorf("observation_space: %w", err)
	}
	act, err := FromGym(env.Action)
	if err != nil {
		return EnvSpaces{}, fmt.Errorf("action_space: %w", err)
	}

	return EnvSpaces{Observation: obs, Action: act}, nil
}

// ToGym converts both spaces back to foreign objects.
func (e EnvSpaces) ToGym() (gymspaces.EnvSpaces, error) {
	if e.Observation == nil || e.Action == nil {
		return gymspaces.EnvSpaces{}, fmt.Errorf("ToGym: missing space: %w", ErrUnsupportedSpace)
	}
	obs, err := ToGym(e.Observation)
	if err != nil {
		return gymspaces.EnvSpaces{}, fmt.Errorf("observation_space: %w", err)
	}
	act, err := ToGym(e.Action)
	if err != nil {
		return gymspaces.EnvSpaces{}, fmt.Errorf("action_space: %w", err)
	}

	return gymspaces.EnvSpaces{Observation: obs, Action: act}, nil
}

// ConvertAll converts a named collection of foreign spaces (one per agent,
// say). Keys are processed in sorted order, so the first failure reported
// is deterministic; nothing is returned on failure.
func ConvertAll(spaces map[string]gymspaces.Space) (map[string]*space.Space, error) {
	keys := maps.Keys(spaces)
	slices.Sort(keys)
	out := make(map[string]*space.Space, len(spaces))
	for _, k := range keys {
		s, err := FromGym(spaces[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = s
	}

	return out, nil
}
