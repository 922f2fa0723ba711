// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/bridge"
	"github.com/katalvlaran/tinyspace/space"
	"github.com/spf13/cobra"
)

func describeCommand(cfg *Config) *cobra.Command {
	var literal bool
	cmd := &cobra.Command{
		Use:   "describe FILE",
		Short: "Print a schema, its flat dimension and its leaves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bridge.LoadFile(args[0])
			if err != nil {
				return err
			}
			logger(cmd, cfg).Printf("loaded %s", args[0])
			if literal {
				return emit(cmd, cfg, bridge.ToLiteral(s))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s)
			fmt.Fprintf(out, "flatdim: %d\n", space.FlatDim(s))
			for _, l := range space.Leaves(s) {
				fmt.Fprintf(out, "%s\t%s\n", l.Path, l.Space)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&literal, "literal", false, "Print the canonical literal instead of the summary")
	return cmd
}
