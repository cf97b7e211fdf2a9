// Command gocachebench replays the hot-set, loop-scan, and phase-shift
// scenarios against every policy in this module and prints one hit-rate
// percentage per (policy, scenario) pair.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		steps int
		seed  int64
	)

	root := &cobra.Command{
		Use:   "gocachebench",
		Short: "Replay cache workload scenarios against every policy in gocache",
		// main prints the returned error; cobra must not print it as well.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			logger.Info("starting benchmark run", zap.Int("steps", steps), zap.Int64("seed", seed))

			scenarios := allScenarios(seed, steps)
			results := runAll(scenarios)

			logger.Info("benchmark run complete", zap.Int("results", len(results)))
			printReport(cmd.OutOrStdout(), results)
			return nil
		},
	}

	root.Flags().IntVar(&steps, "steps", 10000, "number of accesses to replay per scenario")
	root.Flags().Int64Var(&seed, "seed", 1, "seed for the scenario trace generators")

	return root
}
