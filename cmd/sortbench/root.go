// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-sortbench/bench"
	"github.com/ajroetker/go-sortbench/sorts"
)

// newRootCmd builds the command tree. The root command runs the benchmark.
func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark sequential and parallel elementary sorts",
		Long: `sortbench generates one reproducible array per size, sorts a copy of it
with every variant of bubble, selection and insertion sort, and reports how
long each sort took.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./sortbench.yaml)")
	root.PersistentFlags().String(keyLogLevel, "", "Log level: debug, info, warn, error (default warn)")
	addBenchFlags(root.Flags())

	root.RunE = func(cmd *cobra.Command, _ []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		if err := readConfig(v, cfgFile); err != nil {
			return err
		}
		return runBench(cmd, v)
	}

	root.AddCommand(newSpeedupCmd(), newVariantsCmd())
	return root
}

// runBench runs one benchmark configured by v, reporting to cmd's stdout and
// logging to its stderr.
func runBench(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	cfg, err := benchConfig(v)
	if err != nil {
		return err
	}
	rep, err := bench.NewReporter(v.GetString(keyFormat), cmd.OutOrStdout(), cfg)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(cfg, bench.WithLogger(logger))
	if err != nil {
		return err
	}
	defer runner.Close()

	if used := v.ConfigFileUsed(); used != "" {
		logger.Info("using config file", "path", used)
	}
	norm := runner.Config()
	logger.Info("starting benchmark",
		"sizes", norm.Sizes,
		"seed", norm.Seed,
		"range", norm.Range.String(),
		"threads", norm.MaxThreads,
		"schedule", norm.Schedule.String(),
		"grain", norm.Grain,
		"reduction", norm.Reduction.String(),
	)
	if _, err := runner.Run(cmd.Context(), rep); err != nil {
		return fmt.Errorf("benchmark: %w", err)
	}
	return nil
}

func newSpeedupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speedup [file]",
		Short: "Summarize seq/par speedups from gobench-format output",
		Long: `speedup reads the output of 'sortbench --format gobench' from a file, or
from stdin when no file is given, and prints the parallel speedup of every
algorithm at every size.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			samples, err := bench.ParseGoBench(in)
			if err != nil {
				return err
			}
			speedups := bench.Speedups(samples)
			if len(speedups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No seq/par pairs found.")
				return nil
			}
			for _, sp := range speedups {
				fmt.Fprintln(cmd.OutOrStdout(), sp)
			}
			return nil
		},
	}
}

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the benchmarked variants in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, v := range sorts.Variants() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", v.Key(), v)
			}
			return nil
		},
	}
}
