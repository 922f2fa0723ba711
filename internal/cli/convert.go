// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/tinyspace/bridge"
	"github.com/katalvlaran/tinyspace/gymspaces"
	"github.com/spf13/cobra"
)

// errRoundTrip reports a gym space that does not survive conversion unchanged.
var errRoundTrip = errors.New("round trip changed the space")

func convertCommand(cfg *Config) *cobra.Command {
	var (
		envPair bool
		check   bool
	)
	cmd := &cobra.Command{
		Use:   "convert GYMFILE",
		Short: "Convert a gym space dump into a literal schema",
		Long: "Convert a gym space dump (the tagged JSON written by export) into a literal schema.\n" +
			"With --env the file holds {\"observation_space\": ..., \"action_space\": ...}.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			log := logger(cmd, cfg)
			if envPair {
				g, err := gymspaces.UnmarshalEnv(data)
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				e, err := bridge.ConvertEnv(g)
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				log.Printf("observation_space: %s", e.Observation)
				log.Printf("action_space: %s", e.Action)
				if check {
					back, err := e.ToGym()
					if err != nil {
						return err
					}
					if !gymspaces.Equal(g.Observation, back.Observation) || !gymspaces.Equal(g.Action, back.Action) {
						return fmt.Errorf("%s: %w", args[0], errRoundTrip)
					}
				}
				return emit(cmd, cfg, map[string]any{
					"observation_space": bridge.ToLiteral(e.Observation),
					"action_space":      bridge.ToLiteral(e.Action),
				})
			}

			g, err := gymspaces.Unmarshal(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			s, err := bridge.FromGym(g)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			log.Printf("converted %s", s)
			if check {
				back, err := bridge.ToGym(s)
				if err != nil {
					return err
				}
				if !gymspaces.Equal(g, back) {
					return fmt.Errorf("%s: %w", args[0], errRoundTrip)
				}
			}
			return emit(cmd, cfg, bridge.ToLiteral(s))
		},
	}
	cmd.Flags().BoolVar(&envPair, "env", false, "Read an observation/action pair")
	cmd.Flags().BoolVar(&check, "check", false, "Fail unless converting back yields an equal gym space")
	return cmd
}

func exportCommand(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write a literal schema as a gym space dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bridge.LoadFile(args[0])
			if err != nil {
				return err
			}
			g, err := bridge.ToGym(s)
			if err != nil {
				return err
			}
			data, err := gymspaces.Marshal(g)
			if err != nil {
				return err
			}
			logger(cmd, cfg).Printf("exported %s as %s", s, g.TypeName())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return err
		},
	}
}
