package benchmark

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// ErrInvalidSweep is returned when a sweep cannot be run at all.
var ErrInvalidSweep = errors.New("invalid sweep")

// Runner defines the interface for running benchmark sweeps.
type Runner interface {
	Run(s Sweep) (Result, error)
}

// Observer is notified of every measurement and failure as the harness
// produces them.
type Observer interface {
	ObserveMeasurement(method string, m Measurement)
	ObserveFailure(method string, param int, err error)
}

// Harness implements Runner. Every estimator call is bracketed by exactly two
// clock reads so successive sweep points never share timing.
type Harness struct {
	now      func() time.Time
	observer Observer
	logger   *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(h *Harness) { h.now = now }
}

func WithObserver(o Observer) Option {
	return func(h *Harness) { h.observer = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

func NewHarness(opts ...Option) *Harness {
	h := &Harness{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Validate reports whether the sweep is well formed.
func (s Sweep) Validate() error {
	if s.Estimate == nil {
		return fmt.Errorf("%w: %s has no estimator", ErrInvalidSweep, s.Method)
	}
	if s.Runs < 1 {
		return fmt.Errorf("%w: %s needs at least one run, got %d", ErrInvalidSweep, s.Method, s.Runs)
	}
	if len(s.Params) == 0 {
		return fmt.Errorf("%w: %s has no workload parameters", ErrInvalidSweep, s.Method)
	}
	for i := 1; i < len(s.Params); i++ {
		if s.Params[i] <= s.Params[i-1] {
			return fmt.Errorf("%w: %s parameters must be strictly ascending (%d after %d)",
				ErrInvalidSweep, s.Method, s.Params[i], s.Params[i-1])
		}
	}
	return nil
}

// Run drives the sweep's estimator over every parameter, Runs times over.
// The first estimator error aborts the sweep; no partial result is returned.
func (h *Harness) Run(s Sweep) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{
		Method: s.Method,
		Label:  s.Label,
		Unit:   s.Unit,
		Axes:   s.Axes,
		Runs:   make([]Run, 0, s.Runs),
	}

	for i := 0; i < s.Runs; i++ {
		run := Run{Index: i + 1, Measurements: make([]Measurement, 0, len(s.Params))}
		for _, p := range s.Params {
			m, err := h.measure(s, p)
			if err != nil {
				if h.observer != nil {
					h.observer.ObserveFailure(s.Method, p, err)
				}
				return Result{}, fmt.Errorf("%s sweep aborted at %s=%d (run %d): %w", s.Method, s.Unit, p, i+1, err)
			}
			if h.observer != nil {
				h.observer.ObserveMeasurement(s.Method, m)
			}
			h.logger.Debug("measured", "method", s.Method, "run", i+1, s.Unit, p,
				"estimate", m.Estimate, "abs_error", m.AbsError, "runtime", m.Runtime)
			run.Measurements = append(run.Measurements, m)
		}
		res.Runs = append(res.Runs, run)
	}

	h.logger.Info("sweep complete", "method", s.Method, "runs", s.Runs, "points", len(s.Params))
	return res, nil
}

// RunAll runs the sweeps in order and stops at the first failure.
func (h *Harness) RunAll(sweeps []Sweep) ([]Result, error) {
	results := make([]Result, 0, len(sweeps))
	for _, s := range sweeps {
		r, err := h.Run(s)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (h *Harness) measure(s Sweep, param int) (Measurement, error) {
	start := h.now()
	estimate, err := s.Estimate(param)
	elapsed := h.now().Sub(start)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{
		Param:    param,
		Estimate: estimate,
		AbsError: math.Abs(math.Pi - estimate),
		Runtime:  elapsed,
	}, nil
}
