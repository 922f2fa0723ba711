// SPDX-License-Identifier: MIT

// Package gymspaces mirrors the space classes of the external simulation
// environment library (gym.spaces) as plain Go values.
//
// These types are the foreign side of the bridge: they carry exactly what the
// foreign objects carry (fully expanded Box bounds, a Discrete start offset,
// numpy dtype names) and nothing of tinyspace's own invariants. Environments
// written against the foreign library hand these values over; package bridge
// converts them to and from space descriptors.
//
// The JSON dump format is a tagged envelope:
//
//	{"type": "Box", "shape": [3], "dtype": "float32", "low": [-1, -1, -1], "high": [1, 1, 1]}
//	{"type": "Discrete", "n": 4, "start": 0}
//	{"type": "Dict", "spaces": [{"key": "pos", "space": {...}}, ...]}
//
// Infinite bounds are written as the strings "inf" and "-inf".
package gymspaces
