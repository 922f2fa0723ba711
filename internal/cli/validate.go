// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/bridge"
	"github.com/katalvlaran/tinyspace/space"
	"github.com/spf13/cobra"
)

func validateCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate SPACE VALUE",
		Short: "Check that a value file conforms to a schema",
		Long:  "Check that a value file conforms to a schema. A mismatch is reported with its path and exits non-zero.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bridge.LoadFile(args[0])
			if err != nil {
				return err
			}
			lit, err := bridge.ReadLiteral(args[1])
			if err != nil {
				return err
			}
			v, err := bridge.DecodeValue(s, lit)
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			if err := space.Mismatch(s, v); err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			logger(cmd, cfg).Printf("%s conforms to %s", args[1], s)
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
