// Package score computes the achieved objective of an accepted schedule:
// total and per-request/per-mission tracking time. Setup and teardown consume
// resource time but are not billable, so only the tracking span counts.
package score

import (
	"github.com/antennaops/trackcheck/core/model"
	"github.com/antennaops/trackcheck/core/problem"
)

// Summary is a pure aggregation over accepted tracks.
type Summary struct {
	// TotalDuration is the summed tracking time over all accepted tracks.
	TotalDuration int64
	// PerRequest maps track id to satisfied tracking time.
	PerRequest map[string]int64
	// PerMission maps mission id to satisfied tracking time over all of the
	// mission's requests.
	PerMission map[string]int64
	// SatisfiedRequests counts distinct requests with at least one accepted
	// track.
	SatisfiedRequests int
}

// Compute aggregates the accepted tracks against the index. Tracks whose
// request is unknown to the index contribute nothing; the validator already
// reports them.
func Compute(ix *problem.Index, accepted []model.Track) Summary {
	s := Summary{
		PerRequest: make(map[string]int64),
		PerMission: make(map[string]int64),
	}
	for _, t := range accepted {
		req, ok := ix.Request(t.TrackID)
		if !ok {
			continue
		}
		d := t.TrackingDuration()
		if _, seen := s.PerRequest[t.TrackID]; !seen {
			s.SatisfiedRequests++
		}
		s.TotalDuration += d
		s.PerRequest[t.TrackID] += d
		s.PerMission[req.Mission] += d
	}
	return s
}
