// Package report assembles the verification verdict, diagnostics and metrics
// into one record and renders it as compact text, verbose text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/antennaops/trackcheck/core/fairness"
	"github.com/antennaops/trackcheck/core/validate"
)

// Verdict is the overall outcome of one verification run.
type Verdict string

const (
	VerdictValid   Verdict = "VALID"
	VerdictInvalid Verdict = "INVALID"
)

// Report is the complete outcome of verifying one candidate schedule.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	TimeUnit    string    `json:"time_unit"`

	Verdict    Verdict              `json:"verdict"`
	Violations []validate.Violation `json:"violations,omitempty"`

	// TotalDuration is the recomputed score of the accepted tracks. For an
	// invalid schedule it is the score the accepted subset would earn.
	TotalDuration     int64 `json:"total_duration"`
	SatisfiedRequests int   `json:"satisfied_requests"`
	AcceptedTracks    int   `json:"accepted_tracks"`

	Fairness fairness.Summary `json:"fairness"`

	// ReportedScore echoes the solver's self-reported score when the
	// solution document carries one. The recomputed value is authoritative;
	// ScoreMismatch flags a discrepancy instead of reconciling it.
	ReportedScore *int64 `json:"reported_score,omitempty"`
	ScoreMismatch bool   `json:"score_mismatch,omitempty"`
}

// Valid reports whether the verdict is VALID.
func (r Report) Valid() bool { return r.Verdict == VerdictValid }

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText renders the report for humans. The compact form is a handful of
// summary lines; the verbose form adds every violation and the per-mission
// fairness detail.
func WriteText(w io.Writer, r Report, verbose bool) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format+"\n", args...)
		}
	}

	p("verdict: %s", r.Verdict)
	p("violations: %d", len(r.Violations))
	p("total scheduled duration: %d %s", r.TotalDuration, r.TimeUnit)
	p("satisfied requests: %d (accepted tracks: %d)", r.SatisfiedRequests, r.AcceptedTracks)
	p("fairness: u_rms=%.4f u_max=%.4f", r.Fairness.URMS, r.Fairness.UMax)
	if r.ReportedScore != nil {
		if r.ScoreMismatch {
			p("reported score: %d (MISMATCH, recomputed %d is authoritative)", *r.ReportedScore, r.TotalDuration)
		} else {
			p("reported score: %d (matches)", *r.ReportedScore)
		}
	}

	if verbose {
		if len(r.Violations) > 0 {
			p("")
			for _, viol := range r.Violations {
				p("  %s", viol)
			}
		}
		if len(r.Fairness.Missions) > 0 {
			p("")
			for _, m := range r.Fairness.Missions {
				p("  mission %s: requested=%d satisfied=%d unsatisfied=%.4f",
					m.ID, m.Requested, m.Satisfied, m.Unsatisfied)
			}
		}
	}
	return err
}
