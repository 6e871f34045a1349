package benchmark

import (
	"time"

	"pibench/internal/estimator"
)

// Scale is an axis scale hint passed through to presentation.
type Scale string

const (
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
)

// Axes holds the scale hints for a plotted sweep. X is absolute error, Y is runtime.
type Axes struct {
	X Scale `json:"x"`
	Y Scale `json:"y"`
}

// Measurement is the outcome of one timed estimator call.
type Measurement struct {
	Param    int           `json:"param"`
	Estimate float64       `json:"estimate"`
	AbsError float64       `json:"abs_error"`
	Runtime  time.Duration `json:"runtime_ns"`
}

// Run represents one repetition of a sweep.
type Run struct {
	Index        int           `json:"index"`
	Measurements []Measurement `json:"measurements"`
}

// Result represents every run of a single sweep, ready for presentation.
type Result struct {
	Method string `json:"method"`
	Label  string `json:"label"`
	Unit   string `json:"unit"`
	Axes   Axes   `json:"axes"`
	Runs   []Run  `json:"runs"`
}

// Sweep describes one benchmark: an estimator driven across an ascending list
// of workload parameters, repeated Runs times.
type Sweep struct {
	Method   string
	Label    string
	Unit     string // what the parameter counts: points, terms, sides
	Params   []int
	Runs     int
	Axes     Axes
	Estimate estimator.Func
}
