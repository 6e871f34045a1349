package main

import (
	"fmt"
	"io"
	"time"

	"pibench/internal/benchmark"
	"pibench/internal/config"
	"pibench/internal/estimator"
	"pibench/internal/telemetry"
	"pibench/internal/ui"

	"github.com/spf13/cobra"
)

// newRunnerFunc allows mocking in tests.
var newRunnerFunc = func(opts ...benchmark.Option) benchmark.Runner {
	return benchmark.NewHarness(opts...)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every sweep and report runtime versus precision",
	Long: `Prints the doubling Archimedes estimate, then drives Monte Carlo, the
Nilakantha accumulator and the polygon Archimedes method across their sweeps.
Each estimator call is timed on its own. Results are rendered once every sweep
has finished.`,
	Args: cobra.NoArgs,
	RunE: runBenchmarks,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(c *cobra.Command) {
	c.Flags().Uint64("seed", 0, "Seed for the Monte Carlo generator (0 picks a random seed)")
	c.Flags().Int("iterations", estimator.DefaultDoublingIterations, "Side doublings for the startup Archimedes estimate")
	c.Flags().String("format", config.FormatTable, "Output format: table, markdown or none")
	c.Flags().String("plot-dir", "", "Write PNG charts into this directory")
	c.Flags().Bool("metrics", false, "Print Prometheus metrics after the report")
	c.Flags().Bool("no-color", false, "Disable coloured output")
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if err := printDoubling(out, cfg.Archimedes.Iterations); err != nil {
		return err
	}

	// Compute stage.
	metrics := telemetry.NewMetrics(false)
	runner := newRunnerFunc(benchmark.WithObserver(metrics))
	sweeps := benchmark.StandardSweeps(cfg.Plan(), estimator.NewSource(cfg.Seed))

	results, err := computeSweeps(runner, sweeps)
	if err != nil {
		telemetry.LogError("benchmark aborted", err)
		return err
	}

	// Render stage.
	presenters, err := buildPresenters(out, cfg.Output)
	if err != nil {
		return err
	}
	if err := ui.Render(presenters, results); err != nil {
		telemetry.LogError("rendering incomplete", err)
	}

	if cfg.Output.Metrics {
		return metrics.WriteText(out)
	}
	return nil
}

// printDoubling prints the doubling estimate and the runtime of that one call.
func printDoubling(w io.Writer, iterations int) error {
	start := time.Now()
	estimate, err := estimator.ArchimedesDoubling(iterations)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Approximation of pi using the original Archimedes method: % .10f\n", estimate)
	fmt.Fprintf(w, "Execution time of original Archimedes method: % .10f seconds\n", elapsed.Seconds())
	return nil
}

func computeSweeps(runner benchmark.Runner, sweeps []benchmark.Sweep) ([]benchmark.Result, error) {
	results := make([]benchmark.Result, 0, len(sweeps))
	for _, s := range sweeps {
		telemetry.LogInfo("running sweep", "method", s.Method, "runs", s.Runs, s.Unit, len(s.Params))
		r, err := runner.Run(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func buildPresenters(out io.Writer, oc config.OutputConfig) ([]ui.Presenter, error) {
	var presenters []ui.Presenter

	switch oc.Format {
	case config.FormatTable:
		presenters = append(presenters, ui.NewTablePresenter(out, oc.NoColor))
	case config.FormatMarkdown:
		style := ""
		if oc.NoColor {
			style = "notty"
		}
		presenters = append(presenters, ui.NewMarkdownPresenter(out, style))
	}

	if oc.PlotDir != "" {
		p, err := ui.NewPlotPresenter(oc.PlotDir)
		if err != nil {
			return nil, err
		}
		presenters = append(presenters, p)
	}
	return presenters, nil
}
