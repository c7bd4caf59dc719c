package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	v := NewViper()
	cmd := &cobra.Command{
		Use:           "nonobench",
		Short:         "Measure solver latency for every puzzle in the input directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := LoadConfig(v)
			if err != nil {
				return err
			}
			if err := InitLogger(config.LogLevel); err != nil {
				return err
			}

			run := uuid.NewString()
			system := &System{
				benchmark: Benchmark{
					Executor:    &ProcessExecutor{Path: config.Executable},
					Strategy:    config.Strategy,
					Iterations:  config.Iterations,
					Warmup:      config.Warmup,
					ClearCaches: config.ClearCaches,
				},
				inputDir: config.InputDir,
				spread:   config.Spread,
				report:   config.Report,
				meta:     map[string]any{"run": run, "executable": config.Executable},
				out:      cmd.OutOrStdout(),
			}
			if config.Results != "" {
				storage, err := OpenStorage(config.Results, run)
				if err != nil {
					return err
				}
				defer storage.Close()
				system.recorder = storage
			}

			_, err = system.Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().IntP("n-iter", "n", 10, "number of measured trials per input")
	if err := v.BindPFlag("n_iter", cmd.Flags().Lookup("n-iter")); err != nil {
		panic(fmt.Errorf("failed to bind n-iter flag: %w", err))
	}
	return cmd
}
