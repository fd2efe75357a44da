// Package validate decides, per track and per whole schedule, validity
// against every physical and administrative constraint. Violations are
// accumulated rather than fail-fast so a single run yields a complete
// diagnostic.
package validate

import (
	"fmt"
	"sort"

	"github.com/antennaops/trackcheck/core/logger"
	"github.com/antennaops/trackcheck/core/model"
	"github.com/antennaops/trackcheck/core/problem"
)

// Result is the outcome of validating one candidate schedule: every
// violation found, and the subset of tracks that passed the per-track checks
// and therefore contribute to scoring.
type Result struct {
	Violations []Violation
	Accepted   []model.Track
}

// Valid reports whether the schedule passed every check.
func (r Result) Valid() bool { return len(r.Violations) == 0 }

// Validator checks candidate schedules against one problem index.
type Validator struct {
	ix  *problem.Index
	log logger.Logger
}

// New creates a Validator over the given index.
func New(ix *problem.Index, log logger.Logger) *Validator {
	return &Validator{ix: ix, log: log}
}

// Validate runs every per-track and cross-track check over the candidate
// tracks. Input order never affects validity; it only decides which segment
// of an illegally split request is reported as the extra one.
func (v *Validator) Validate(tracks []model.Track) Result {
	var res Result
	firstAccepted := make(map[string]bool)

	for _, t := range tracks {
		violations := v.checkTrack(t)
		if len(violations) == 0 {
			req, _ := v.ix.Request(t.TrackID)
			if !req.Splittable && firstAccepted[t.TrackID] {
				violations = append(violations, Violation{
					Kind:       SplittingNotAllowed,
					TrackID:    t.TrackID,
					TrackIndex: t.Index,
					Detail:     fmt.Sprintf("request %s is not splittable and already has an accepted track", t.TrackID),
				})
			}
		}
		if len(violations) == 0 {
			firstAccepted[t.TrackID] = true
			res.Accepted = append(res.Accepted, t)
			continue
		}
		res.Violations = append(res.Violations, violations...)
	}

	res.Violations = append(res.Violations, v.checkOverlaps(res.Accepted)...)
	res.Violations = append(res.Violations, v.checkMaintenance(res.Accepted)...)
	res.Violations = append(res.Violations, v.checkAggregates(res.Accepted)...)

	v.log.Debugw("schedule validated", map[string]any{
		"tracks":     len(tracks),
		"accepted":   len(res.Accepted),
		"violations": len(res.Violations),
	})
	return res
}

// checkTrack runs the checks that are independent of all other tracks:
// reference, combination membership, setup/teardown timing, visibility
// containment and minimum segment duration.
func (v *Validator) checkTrack(t model.Track) []Violation {
	req, ok := v.ix.Request(t.TrackID)
	if !ok {
		return []Violation{{
			Kind:       UnknownRequest,
			TrackID:    t.TrackID,
			TrackIndex: t.Index,
			Detail:     fmt.Sprintf("no request with track id %s", t.TrackID),
		}}
	}

	var out []Violation
	vis, allowed := req.Visibility(t.Combination)
	if !allowed {
		out = append(out, Violation{
			Kind:       ResourceNotAllowed,
			TrackID:    t.TrackID,
			TrackIndex: t.Index,
			Resource:   t.Combination.ID(),
			Detail:     fmt.Sprintf("combination %s is not allowed for request %s", t.Combination, t.TrackID),
		})
	}

	if t.TrackingOn != t.StartTime+req.SetupTime || t.EndTime != t.TrackingOff+req.TeardownTime {
		out = append(out, Violation{
			Kind:       SetupTeardownMismatch,
			TrackID:    t.TrackID,
			TrackIndex: t.Index,
			Detail: fmt.Sprintf("want tracking_on=start+%d and end=tracking_off+%d, got start=%d on=%d off=%d end=%d",
				req.SetupTime, req.TeardownTime, t.StartTime, t.TrackingOn, t.TrackingOff, t.EndTime),
		})
	}

	if allowed {
		if _, contained := vis.Windows.Covering(t.TrackingSpan()); !contained {
			out = append(out, Violation{
				Kind:       OutsideViewPeriod,
				TrackID:    t.TrackID,
				TrackIndex: t.Index,
				Resource:   t.Combination.ID(),
				Detail:     fmt.Sprintf("tracking span %s is not contained in any view period of %s", t.TrackingSpan(), t.Combination),
			})
		}
	}

	if min := req.SegmentMinimum(); t.TrackingDuration() < min {
		out = append(out, Violation{
			Kind:       BelowMinimumDuration,
			TrackID:    t.TrackID,
			TrackIndex: t.Index,
			Detail:     fmt.Sprintf("tracking duration %d below segment minimum %d", t.TrackingDuration(), min),
		})
	}
	return out
}

// checkOverlaps detects double-booked physical resources. Arrayed
// combinations fan out to every member resource, each occupied for the full
// [start_time, end_time) span including setup and teardown. Detection is an
// interval sweep per resource: sort by start, carry the latest end seen.
func (v *Validator) checkOverlaps(accepted []model.Track) []Violation {
	byResource := make(map[model.ResourceID][]model.Track)
	for _, t := range accepted {
		for _, r := range t.Combination.Resources() {
			byResource[r] = append(byResource[r], t)
		}
	}
	resources := make([]model.ResourceID, 0, len(byResource))
	for r := range byResource {
		resources = append(resources, r)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i] < resources[j] })

	var out []Violation
	for _, res := range resources {
		ts := byResource[res]
		sort.Slice(ts, func(i, j int) bool {
			if ts[i].StartTime != ts[j].StartTime {
				return ts[i].StartTime < ts[j].StartTime
			}
			return ts[i].Index < ts[j].Index
		})
		latest := ts[0]
		for _, cur := range ts[1:] {
			if cur.StartTime < latest.EndTime {
				detail := fmt.Sprintf("spans %s and %s collide on %s", latest.Span(), cur.Span(), res)
				out = append(out,
					Violation{Kind: ResourceOverlap, TrackID: latest.TrackID, TrackIndex: latest.Index, Resource: string(res), Detail: detail},
					Violation{Kind: ResourceOverlap, TrackID: cur.TrackID, TrackIndex: cur.Index, Resource: string(res), Detail: detail},
				)
			}
			if cur.EndTime > latest.EndTime {
				latest = cur
			}
		}
	}
	return out
}

// checkMaintenance rejects any occupation span intersecting scheduled
// downtime on a member resource, visibility notwithstanding.
func (v *Validator) checkMaintenance(accepted []model.Track) []Violation {
	var out []Violation
	for _, t := range accepted {
		for _, res := range t.Combination.Resources() {
			if win, hit := v.ix.Maintenance(res).Overlapping(t.Span()); hit {
				out = append(out, Violation{
					Kind:       MaintenanceConflict,
					TrackID:    t.TrackID,
					TrackIndex: t.Index,
					Resource:   string(res),
					Detail:     fmt.Sprintf("span %s intersects maintenance %s on %s", t.Span(), win, res),
				})
			}
		}
	}
	return out
}

// checkAggregates verifies the summed tracking duration per request against
// its overall bounds. The minimum bound is only evaluated for splittable
// requests; for non-splittable ones the per-track check already enforces the
// full minimum. Requests without accepted tracks are simply unsatisfied, not
// in violation.
func (v *Validator) checkAggregates(accepted []model.Track) []Violation {
	totals := make(map[string]int64)
	for _, t := range accepted {
		totals[t.TrackID] += t.TrackingDuration()
	}
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []Violation
	for _, id := range ids {
		req, ok := v.ix.Request(id)
		if !ok {
			continue
		}
		total := totals[id]
		if req.Splittable && total < req.MinDuration {
			out = append(out, Violation{
				Kind:       BelowMinimumDuration,
				TrackID:    id,
				TrackIndex: -1,
				Detail:     fmt.Sprintf("summed tracking duration %d below request minimum %d", total, req.MinDuration),
			})
		}
		if total > req.MaxDuration {
			out = append(out, Violation{
				Kind:       AboveMaximumDuration,
				TrackID:    id,
				TrackIndex: -1,
				Detail:     fmt.Sprintf("summed tracking duration %d above request maximum %d", total, req.MaxDuration),
			})
		}
	}
	return out
}
