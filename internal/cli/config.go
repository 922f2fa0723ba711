// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/tinyspace/bridge"
)

// Config holds command configuration. Environment variables seed the
// defaults and the persistent flags of the root command override them.
type Config struct {
	Seed    uint64 `env:"TINYSPACE_SEED"    envDefault:"1"`
	Format  string `env:"TINYSPACE_FORMAT"  envDefault:"json"`
	Verbose bool   `env:"TINYSPACE_VERBOSE"`
}

// ParseConfig reads the environment into a Config.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.OutputFormat(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// OutputFormat returns the codec used for command output.
func (c Config) OutputFormat() (bridge.Format, error) {
	switch f := bridge.Format(c.Format); f {
	case bridge.FormatJSON, bridge.FormatYAML, bridge.FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, yaml or toml)", c.Format)
	}
}
