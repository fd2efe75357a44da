// Package fairness reduces per-mission requested vs. satisfied durations to
// the unsatisfied-fraction distribution and its summary statistics, used to
// judge equitable allocation across requesters.
package fairness

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/antennaops/trackcheck/core/problem"
)

// Mission is the fairness view of one requester.
type Mission struct {
	ID        string  `json:"id"`
	Requested int64   `json:"requested"`
	Satisfied int64   `json:"satisfied"`
	// Unsatisfied is (requested - satisfied) / requested, clamped to [0, 1].
	Unsatisfied float64 `json:"unsatisfied"`
}

// Summary holds the fairness statistics over all missions with at least one
// request.
type Summary struct {
	// URMS is sqrt(mean(unsatisfied^2)) over all missions.
	URMS float64 `json:"u_rms"`
	// UMax is the worst unsatisfied fraction.
	UMax float64 `json:"u_max"`
	// Missions is the per-mission detail, sorted by id.
	Missions []Mission `json:"missions"`
}

// Compute derives the fairness summary. Requested duration per mission is
// the sum of the nominal durations of its requests; satisfied comes from the
// score summary. Missions with zero requested duration are excluded from the
// aggregate so the fraction is always well defined.
func Compute(ix *problem.Index, satisfiedPerMission map[string]int64) Summary {
	requested := make(map[string]int64)
	for _, req := range ix.Requests() {
		requested[req.Mission] += req.MaxDuration
	}
	ids := make([]string, 0, len(requested))
	for id := range requested {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var s Summary
	squares := make([]float64, 0, len(ids))
	for _, id := range ids {
		want := requested[id]
		if want <= 0 {
			continue
		}
		got := satisfiedPerMission[id]
		u := float64(want-got) / float64(want)
		u = math.Max(0, math.Min(1, u))
		s.Missions = append(s.Missions, Mission{ID: id, Requested: want, Satisfied: got, Unsatisfied: u})
		squares = append(squares, u*u)
		if u > s.UMax {
			s.UMax = u
		}
	}
	if len(squares) > 0 {
		s.URMS = math.Sqrt(stat.Mean(squares, nil))
	}
	return s
}
