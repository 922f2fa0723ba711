// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/tinyspace/bridge"
	"github.com/katalvlaran/tinyspace/sample"
	"github.com/spf13/cobra"
)

func sampleCommand(cfg *Config) *cobra.Command {
	var (
		count int
		batch bool
		zeros bool
	)
	cmd := &cobra.Command{
		Use:   "sample FILE",
		Short: "Draw values from a schema",
		Long: "Draw values from a schema. A single draw prints one value; --count N prints a list,\n" +
			"or with --batch one value whose leaves carry a leading axis of size N.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			s, err := bridge.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts := []sample.Option{sample.WithSeed(cfg.Seed)}
			if zeros {
				opts = append(opts, sample.WithZeros())
			}
			if batch {
				opts = append(opts, sample.WithBatch(count))
			}
			logger(cmd, cfg).Printf("sampling %s: seed=%d count=%d batch=%t zeros=%t", s, cfg.Seed, count, batch, zeros)

			sp := sample.New(opts...)
			if batch || count == 1 {
				v, err := sp.Sample(s)
				if err != nil {
					return err
				}
				return emit(cmd, cfg, bridge.EncodeValue(v))
			}
			out := make([]any, count)
			for i := range out {
				v, err := sp.Sample(s)
				if err != nil {
					return err
				}
				out[i] = bridge.EncodeValue(v)
			}
			return emit(cmd, cfg, out)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of values to draw")
	cmd.Flags().BoolVar(&batch, "batch", false, "Stack the draws into one batched value")
	cmd.Flags().BoolVar(&zeros, "zeros", false, "Emit the value closest to zero instead of a random draw")
	return cmd
}
