package telemetry

import (
	"errors"
	"fmt"
	"io"

	"pibench/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

const namespace = "pibench"

// Metrics collects per-method estimator statistics. It implements
// benchmark.Observer and owns its registry, so several instances never clash.
type Metrics struct {
	registry *prometheus.Registry

	Estimates *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
	AbsError  *prometheus.HistogramVec
}

var _ benchmark.Observer = (*Metrics)(nil)

// NewMetrics creates and registers the estimator metrics. withRuntime adds the
// Go runtime collector.
func NewMetrics(withRuntime bool) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.Estimates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimates_total",
			Help:      "Total number of estimator calls",
		},
		[]string{"method", "status"},
	)

	m.Duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "estimate_duration_seconds",
			Help:      "Wall-clock duration of a single estimator call",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 9),
		},
		[]string{"method"},
	)

	m.AbsError = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "estimate_abs_error",
			Help:      "Absolute error of an estimate against math.Pi",
			Buckets:   prometheus.ExponentialBuckets(1e-12, 10, 13),
		},
		[]string{"method"},
	)

	m.registry.MustRegister(m.Estimates, m.Duration, m.AbsError)
	if withRuntime {
		m.registry.MustRegister(collectors.NewGoCollector())
	}
	return m
}

// Registry exposes the underlying registry, e.g. for promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveMeasurement(method string, meas benchmark.Measurement) {
	m.Estimates.WithLabelValues(method, "ok").Inc()
	m.Duration.WithLabelValues(method).Observe(meas.Runtime.Seconds())
	m.AbsError.WithLabelValues(method).Observe(meas.AbsError)
}

func (m *Metrics) ObserveFailure(method string, param int, err error) {
	m.Estimates.WithLabelValues(method, "error").Inc()
	LogDebug("estimator failed", "method", method, "param", param, "error", err)
}

// WriteText writes every gathered family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	var errs []error
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to encode metrics: %w", errors.Join(errs...))
	}
	return nil
}
