// Package app wires the verification pipeline: load documents, validate,
// score, aggregate fairness and assemble the report.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antennaops/trackcheck/config"
	"github.com/antennaops/trackcheck/core/fairness"
	"github.com/antennaops/trackcheck/core/logger"
	coremetrics "github.com/antennaops/trackcheck/core/metrics"
	"github.com/antennaops/trackcheck/core/problem"
	"github.com/antennaops/trackcheck/core/report"
	"github.com/antennaops/trackcheck/core/score"
	"github.com/antennaops/trackcheck/core/validate"
	infralogger "github.com/antennaops/trackcheck/infra/logger"
	inframetrics "github.com/antennaops/trackcheck/infra/metrics"
)

// ErrInvalidSchedule marks a completed verification whose verdict is
// INVALID. The report is still produced in full; callers use the error to
// pick the process exit status.
var ErrInvalidSchedule = errors.New("schedule is invalid")

// Verifier runs the verification pipeline. It holds only immutable
// configuration and observability handles; every call is a pure function of
// its input documents.
type Verifier struct {
	cfg  *config.Config
	log  logger.Logger
	sink coremetrics.MetricsSink
}

// New creates a Verifier from the configuration.
func New(cfg *config.Config) (*Verifier, error) {
	logg := infralogger.NewZerologLoggerWithLevel("verifier", cfg.Logging.ZerologLevel())

	var sinks []coremetrics.MetricsSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := inframetrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, inframetrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = inframetrics.NewMultiSink(sinks...)
	}

	return &Verifier{cfg: cfg, log: logg, sink: sink}, nil
}

// NewWithSink creates a Verifier with an explicit logger and sink. Test
// constructor.
func NewWithSink(cfg *config.Config, log logger.Logger, sink coremetrics.MetricsSink) *Verifier {
	return &Verifier{cfg: cfg, log: log, sink: sink}
}

// VerifyFiles loads the three input documents and runs the pipeline. A
// structural error in any document aborts before constraint checking.
func (v *Verifier) VerifyFiles(instancePath, maintenancePath, solutionPath string) (report.Report, error) {
	requests, err := problem.LoadInstanceFile(instancePath)
	if err != nil {
		return report.Report{}, err
	}
	windows, err := problem.LoadMaintenanceFile(maintenancePath)
	if err != nil {
		return report.Report{}, err
	}
	ix, err := problem.NewIndex(v.cfg.Conventions, requests, windows)
	if err != nil {
		return report.Report{}, err
	}
	sol, err := problem.LoadSolutionFile(solutionPath)
	if err != nil {
		return report.Report{}, err
	}
	return v.Verify(ix, sol)
}

// Verify runs validation, scoring and fairness aggregation over one decoded
// problem and solution. The returned report is complete even when the
// verdict is INVALID; in that case the error is ErrInvalidSchedule.
func (v *Verifier) Verify(ix *problem.Index, sol problem.Solution) (report.Report, error) {
	start := time.Now()
	runID := uuid.NewString()

	res := validate.New(ix, v.log).Validate(sol.Tracks)
	sum := score.Compute(ix, res.Accepted)
	fair := fairness.Compute(ix, sum.PerMission)

	rep := report.Report{
		RunID:             runID,
		GeneratedAt:       start.UTC(),
		TimeUnit:          ix.Conventions().TimeUnit,
		Verdict:           report.VerdictValid,
		Violations:        res.Violations,
		TotalDuration:     sum.TotalDuration,
		SatisfiedRequests: sum.SatisfiedRequests,
		AcceptedTracks:    len(res.Accepted),
		Fairness:          fair,
		ReportedScore:     sol.ReportedScore,
	}
	if !res.Valid() {
		rep.Verdict = report.VerdictInvalid
	}
	if sol.ReportedScore != nil && *sol.ReportedScore != sum.TotalDuration {
		rep.ScoreMismatch = true
		v.log.Warnf("solver-reported score %d differs from recomputed %d", *sol.ReportedScore, sum.TotalDuration)
	}

	v.record(rep, time.Since(start))
	v.log.Infof("verification %s: %s, score %d, %d violations",
		runID, rep.Verdict, rep.TotalDuration, len(rep.Violations))

	if !rep.Valid() {
		return rep, ErrInvalidSchedule
	}
	return rep, nil
}

// ServeMetrics exposes the Prometheus endpoint until ctx is canceled. It is
// a no-op unless Prometheus is enabled.
func (v *Verifier) ServeMetrics(ctx context.Context) error {
	if !v.cfg.Metrics.PrometheusEnabled {
		return nil
	}
	return inframetrics.StartPromServer(ctx, v.cfg.Metrics.PrometheusPort)
}

func (v *Verifier) record(rep report.Report, elapsed time.Duration) {
	byKind := make(map[string]int, len(rep.Violations))
	for _, viol := range rep.Violations {
		byKind[viol.Kind.String()]++
	}
	rec := coremetrics.VerificationRecord{
		RunID:             rep.RunID,
		Valid:             rep.Valid(),
		ViolationsByKind:  byKind,
		TotalDuration:     rep.TotalDuration,
		SatisfiedRequests: rep.SatisfiedRequests,
		URMS:              rep.Fairness.URMS,
		UMax:              rep.Fairness.UMax,
		Elapsed:           elapsed,
		Timestamp:         rep.GeneratedAt,
	}
	if err := v.sink.RecordVerification(rec); err != nil {
		v.log.Errorf("record verification: %v", err)
	}
}
