// SPDX-License-Identifier: MIT

package cli_test

import (
	"testing"

	"github.com/katalvlaran/tinyspace/bridge"
	"github.com/katalvlaran/tinyspace/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := cli.ParseConfig()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.Verbose)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("TINYSPACE_SEED", "42")
	t.Setenv("TINYSPACE_FORMAT", "yaml")
	t.Setenv("TINYSPACE_VERBOSE", "true")

	cfg, err := cli.ParseConfig()
	require.NoError(t, err)
	assert.Equal(t, cli.Config{Seed: 42, Format: "yaml", Verbose: true}, cfg)

	f, err := cfg.OutputFormat()
	require.NoError(t, err)
	assert.Equal(t, bridge.FormatYAML, f)
}

func TestParseConfigErrors(t *testing.T) {
	t.Run("bad seed", func(t *testing.T) {
		t.Setenv("TINYSPACE_SEED", "minus one")
		_, err := cli.ParseConfig()
		assert.Error(t, err)
	})
	t.Run("bad format", func(t *testing.T) {
		t.Setenv("TINYSPACE_FORMAT", "xml")
		_, err := cli.ParseConfig()
		assert.ErrorContains(t, err, `"xml"`)
	})
}
