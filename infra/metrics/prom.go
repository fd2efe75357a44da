package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/antennaops/trackcheck/core/metrics"
)

// PromSink records verification outcomes in Prometheus metrics.
type PromSink struct {
	runs       *prometheus.CounterVec
	violations *prometheus.CounterVec
	duration   prometheus.Histogram
}

// NewPromSink registers verification metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "verification_runs_total",
		Help: "Total number of verification runs by verdict",
	}, []string{"verdict"})
	violations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "verification_violations_total",
		Help: "Total number of constraint violations by kind",
	}, []string{"kind"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "verification_duration_seconds",
		Help:    "Wall time of one full verification pipeline run",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(violations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			violations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, violations: violations, duration: duration}, nil
}

// RecordVerification increments the run and violation counters and observes
// the pipeline duration.
func (s *PromSink) RecordVerification(rec coremetrics.VerificationRecord) error {
	s.runs.WithLabelValues(rec.Verdict()).Inc()
	for kind, n := range rec.ViolationsByKind {
		s.violations.WithLabelValues(kind).Add(float64(n))
	}
	s.duration.Observe(rec.Elapsed.Seconds())
	return nil
}
