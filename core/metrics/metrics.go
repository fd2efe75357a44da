// Package metrics defines the observability contract for verification runs.
// Sinks live under infra/metrics.
package metrics

import "time"

// VerificationRecord captures one completed verification run.
type VerificationRecord struct {
	RunID             string
	Valid             bool
	ViolationsByKind  map[string]int
	TotalDuration     int64
	SatisfiedRequests int
	URMS              float64
	UMax              float64
	Elapsed           time.Duration
	Timestamp         time.Time
}

// Verdict returns the label value for the run outcome.
func (r VerificationRecord) Verdict() string {
	if r.Valid {
		return "valid"
	}
	return "invalid"
}

// MetricsSink records verification outcomes for observability purposes.
type MetricsSink interface {
	RecordVerification(rec VerificationRecord) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordVerification(VerificationRecord) error { return nil }

// Config holds the metrics backend settings.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusPort == "" {
		c.PrometheusPort = ":9090"
	}
}
