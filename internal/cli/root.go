// SPDX-License-Identifier: MIT

// Package cli wires the tinyspace subcommands.
package cli

import (
	"io"
	"log"

	"github.com/katalvlaran/tinyspace/bridge"
	"github.com/spf13/cobra"
)

// GetRootCommand builds the command tree. Flags are bound to cfg, so the
// values already in cfg (usually from ParseConfig) act as flag defaults.
func GetRootCommand(cfg *Config, out, errOut io.Writer) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "tinyspace",
		Short:         "Inspect, sample, validate and convert observation/action space schemas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := cfg.OutputFormat()
			return err
		},
	}
	rootCommand.SetOut(out)
	rootCommand.SetErr(errOut)
	rootCommand.PersistentFlags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for random samples")
	rootCommand.PersistentFlags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format: json, yaml or toml")
	rootCommand.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log progress to stderr")
	// adding the subcommands here
	rootCommand.AddCommand(describeCommand(cfg))
	rootCommand.AddCommand(sampleCommand(cfg))
	rootCommand.AddCommand(validateCommand(cfg))
	rootCommand.AddCommand(collateCommand(cfg))
	rootCommand.AddCommand(convertCommand(cfg))
	rootCommand.AddCommand(exportCommand(cfg))
	return rootCommand
}

// logger writes to the command's stderr when verbose and nowhere otherwise.
func logger(cmd *cobra.Command, cfg *Config) *log.Logger {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}

	return log.New(cmd.ErrOrStderr(), "", 0)
}

// emit writes lit to the command's stdout in the configured format.
func emit(cmd *cobra.Command, cfg *Config, lit any) error {
	f, err := cfg.OutputFormat()
	if err != nil {
		return err
	}
	data, err := bridge.EncodeLiteral(f, lit)
	if err != nil {
		return err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = cmd.OutOrStdout().Write(data)

	return err
}
