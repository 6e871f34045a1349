package benchmark

import (
	"math/rand/v2"

	"pibench/internal/estimator"
)

// Default workload parameters for the standard comparison.
var (
	DefaultPoints = []int{1000, 5000, 10000, 25000, 50000, 100000, 250000, 500000, 1000000}
	DefaultTerms  = []int{1000, 5000, 10000, 25000, 50000, 100000, 250000, 500000, 1000000}
	DefaultSides  = []int{3, 4, 5, 6, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60}
)

// Default repetition counts. Monte Carlo and the polygon variant repeat to
// show run-to-run variance; the series is deterministic.
const (
	DefaultMonteCarloRuns  = 5
	DefaultAccumulatorRuns = 1
	DefaultArchimedesRuns  = 5
)

// Plan selects the parameters of the three standard sweeps.
type Plan struct {
	Points          []int
	MonteCarloRuns  int
	Terms           []int
	AccumulatorRuns int
	Sides           []int
	ArchimedesRuns  int
}

// DefaultPlan returns the standard comparison plan.
func DefaultPlan() Plan {
	return Plan{
		Points:          DefaultPoints,
		MonteCarloRuns:  DefaultMonteCarloRuns,
		Terms:           DefaultTerms,
		AccumulatorRuns: DefaultAccumulatorRuns,
		Sides:           DefaultSides,
		ArchimedesRuns:  DefaultArchimedesRuns,
	}
}

// StandardSweeps builds the Monte Carlo, accumulator and Archimedes sweeps.
// rng feeds every Monte Carlo call.
func StandardSweeps(p Plan, rng *rand.Rand) []Sweep {
	linear := Axes{X: ScaleLinear, Y: ScaleLinear}

	return []Sweep{
		{
			Method: estimator.MethodMonteCarlo,
			Label:  "Monte Carlo Method",
			Unit:   "points",
			Params: p.Points,
			Runs:   p.MonteCarloRuns,
			Axes:   linear,
			Estimate: func(n int) (float64, error) {
				return estimator.MonteCarlo(rng, n)
			},
		},
		{
			Method:   estimator.MethodAccumulator,
			Label:    "Accumulator Method",
			Unit:     "terms",
			Params:   p.Terms,
			Runs:     p.AccumulatorRuns,
			Axes:     linear,
			Estimate: estimator.Nilakantha,
		},
		{
			Method:   estimator.MethodArchimedes,
			Label:    "Archimedes Method",
			Unit:     "sides",
			Params:   p.Sides,
			Runs:     p.ArchimedesRuns,
			Axes:     Axes{X: ScaleLog, Y: ScaleLog},
			Estimate: estimator.ArchimedesPolygon,
		},
	}
}
