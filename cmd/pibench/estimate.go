package main

import (
	"fmt"
	"strconv"
	"strings"

	"pibench/internal/benchmark"
	"pibench/internal/estimator"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <method> <n>",
	Short: "Time a single estimator call",
	Long: `Runs one estimator once with workload parameter n and prints the estimate,
its absolute error and the runtime of the call.

Methods: ` + strings.Join(estimator.Methods(), ", ") + `
n is the point count, term count, polygon side count or doubling count.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: estimator.Methods(),
	RunE:      runEstimate,
}

func init() {
	estimateCmd.Flags().Uint64("seed", 0, "Seed for the Monte Carlo generator (0 picks a random seed)")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	method := args[0]
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid workload parameter %q: %w", args[1], err)
	}

	fn, err := estimator.Lookup(method, estimator.NewSource(cfg.Seed))
	if err != nil {
		return err
	}

	res, err := newRunnerFunc().Run(benchmark.Sweep{
		Method:   method,
		Label:    method,
		Unit:     "n",
		Params:   []int{n},
		Runs:     1,
		Estimate: fn,
	})
	if err != nil {
		return err
	}

	m := res.Runs[0].Measurements[0]
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Method:         %s\n", method)
	fmt.Fprintf(out, "Workload:       %d\n", m.Param)
	fmt.Fprintf(out, "Estimate:       %.10f\n", m.Estimate)
	fmt.Fprintf(out, "Absolute error: %.3e\n", m.AbsError)
	fmt.Fprintf(out, "Runtime:        %.10f seconds\n", m.Runtime.Seconds())
	return nil
}
