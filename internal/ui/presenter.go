package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"pibench/internal/benchmark"
)

// Presenter renders benchmark results. It never influences the results
// themselves: a failing presenter is reported and the others still run.
type Presenter interface {
	Present(r benchmark.Result) error
	Summarize(s []benchmark.Summary) error
}

// Render hands every result, then the comparison, to each presenter. Failures
// are logged and returned joined.
func Render(presenters []Presenter, results []benchmark.Result) error {
	summaries := benchmark.Compare(results)

	var errs []error
	for _, p := range presenters {
		for _, r := range results {
			if err := p.Present(r); err != nil {
				slog.Warn("failed to render result", "presenter", fmt.Sprintf("%T", p), "method", r.Method, "error", err)
				errs = append(errs, fmt.Errorf("%s: %w", r.Method, err))
			}
		}
		if err := p.Summarize(summaries); err != nil {
			slog.Warn("failed to render comparison", "presenter", fmt.Sprintf("%T", p), "error", err)
			errs = append(errs, fmt.Errorf("comparison: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Title is the heading used for a result across every presenter.
func Title(r benchmark.Result) string {
	return r.Label + ": Runtime vs Precision"
}

const (
	xAxisLabel = "Precision (Absolute Error)"
	yAxisLabel = "Runtime (seconds)"
)
