// Copyright 2025 go-highway Authors
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

// Command qsortbench times qsort.Sort against qsort.SortFast on the same
// pseudo-random int32 data and checks that both produce identical output.
//
// Usage:
//
//	qsortbench --count 99000000
//	qsortbench --count 20 --print --compare sub
//	qsortbench --count 1000000 --jobs 16 --workers 8
//
// Setting QSORT_NO_FAST=1 forces the portable exchange for SortFast.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newRootCmd() *cobra.Command {
	var (
		cfg      Config
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "qsortbench",
		Short:         "Benchmark the generic and fast-path quicksort",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if !cmd.Flags().Changed("seed") {
				cfg.Seed = uint64(time.Now().UnixNano())
			}

			report, err := Run(cfg, log, cmd.OutOrStdout())
			if err != nil {
				return errors.Wrap(err, "benchmark")
			}
			if !report.Identical {
				return errors.Errorf("Sort and SortFast disagree (seed %d)", report.Seed)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.Count, "count", "n", 1_000_000, "number of int32 elements to sort")
	f.Uint64Var(&cfg.Seed, "seed", 0, "random seed (default: current time)")
	f.StringVar(&cfg.Compare, "compare", "safe", "comparator: safe (three-way) or sub (subtraction, non-negative input only)")
	f.BoolVar(&cfg.Signed, "signed", false, "generate negative values too")
	f.IntVar(&cfg.Jobs, "jobs", 0, "also sort this many independent arrays in parallel (0 disables)")
	f.IntVar(&cfg.Workers, "workers", 0, "worker pool size for --jobs (default: GOMAXPROCS)")
	f.BoolVar(&cfg.Print, "print", false, fmt.Sprintf("print the input and output arrays (at most %d elements)", maxPrint))
	f.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --log-level %q", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return log, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
