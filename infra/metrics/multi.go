package metrics

import coremetrics "github.com/antennaops/trackcheck/core/metrics"

// MultiSink fans verification records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordVerification forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordVerification(rec coremetrics.VerificationRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordVerification(rec); err != nil {
			return err
		}
	}
	return nil
}
