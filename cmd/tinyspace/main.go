// SPDX-License-Identifier: MIT

// Command tinyspace inspects, samples, validates and converts space schemas.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tinyspace/internal/cli"
)

func main() {
	cfg, err := cli.ParseConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// rootCommand carries the persistent flags; they override the environment
	rootCommand := cli.GetRootCommand(&cfg, os.Stdout, os.Stderr)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
