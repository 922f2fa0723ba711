// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/bridge"
	"github.com/katalvlaran/tinyspace/collate"
	"github.com/spf13/cobra"
)

func collateCommand(cfg *Config) *cobra.Command {
	var split bool
	cmd := &cobra.Command{
		Use:   "collate SPACE VALUES",
		Short: "Stack a list of values into one batch",
		Long: "Stack a list of values into one batch. Every element is checked against the schema first.\n" +
			"With --split the batch is split back into its elements before printing, which shows the round trip.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bridge.LoadFile(args[0])
			if err != nil {
				return err
			}
			lit, err := bridge.ReadLiteral(args[1])
			if err != nil {
				return err
			}
			items, ok := lit.([]any)
			if !ok {
				return fmt.Errorf("%s: want a list of values, got %T", args[1], lit)
			}
			values := make([]any, len(items))
			for i, it := range items {
				if values[i], err = bridge.DecodeValue(s, it); err != nil {
					return fmt.Errorf("%s: element %d: %w", args[1], i, err)
				}
			}
			batched, err := collate.Collate(values, collate.WithSpace(s))
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}
			logger(cmd, cfg).Printf("collated %d values", len(values))
			if !split {
				return emit(cmd, cfg, bridge.EncodeValue(batched))
			}
			parts, err := collate.Split(batched)
			if err != nil {
				return err
			}
			out := make([]any, len(parts))
			for i, p := range parts {
				out[i] = bridge.EncodeValue(p)
			}
			return emit(cmd, cfg, out)
		},
	}
	cmd.Flags().BoolVar(&split, "split", false, "Split the batch again and print the elements")
	return cmd
}
