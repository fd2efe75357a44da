package fairness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antennaops/trackcheck/core/interval"
	"github.com/antennaops/trackcheck/core/model"
	"github.com/antennaops/trackcheck/core/problem"
)

func testIndex(t *testing.T, missions map[string]int64) *problem.Index {
	t.Helper()
	c, err := model.ParseCombinationID("DSS-14")
	require.NoError(t, err)
	var reqs []model.Request
	for mission, requested := range missions {
		reqs = append(reqs, model.Request{
			TrackID: mission + "-req", Mission: mission, MaxDuration: requested,
			Visibilities: []model.Visibility{{
				Combination: c,
				Windows:     interval.MustSet(interval.Interval{Begin: 0, End: 1 << 30}),
			}},
		})
	}
	ix, err := problem.NewIndex(problem.Conventions{}, reqs, nil)
	require.NoError(t, err)
	return ix
}

func TestCompute_Boundaries(t *testing.T) {
	ix := testIndex(t, map[string]int64{"FULL": 1000, "EMPTY": 1000})
	s := Compute(ix, map[string]int64{"FULL": 1000, "EMPTY": 0})

	require.Len(t, s.Missions, 2)
	byID := map[string]Mission{}
	for _, m := range s.Missions {
		byID[m.ID] = m
	}
	assert.Zero(t, byID["FULL"].Unsatisfied, "satisfied == requested")
	assert.Equal(t, 1.0, byID["EMPTY"].Unsatisfied, "satisfied == 0")
	assert.Equal(t, 1.0, s.UMax)
	assert.InDelta(t, math.Sqrt(0.5), s.URMS, 1e-12)
}

func TestCompute_ClampsOverdelivery(t *testing.T) {
	ix := testIndex(t, map[string]int64{"M1": 1000})
	s := Compute(ix, map[string]int64{"M1": 1200})
	require.Len(t, s.Missions, 1)
	assert.Zero(t, s.Missions[0].Unsatisfied)
}

func TestCompute_ExcludesZeroRequested(t *testing.T) {
	ix := testIndex(t, map[string]int64{"M1": 0, "M2": 100})
	s := Compute(ix, nil)
	require.Len(t, s.Missions, 1)
	assert.Equal(t, "M2", s.Missions[0].ID)
	assert.Equal(t, 1.0, s.URMS)
	assert.Equal(t, 1.0, s.UMax)
}

func TestCompute_SortedAndDeterministic(t *testing.T) {
	ix := testIndex(t, map[string]int64{"B": 100, "A": 100, "C": 100})
	s := Compute(ix, map[string]int64{"A": 50})
	require.Len(t, s.Missions, 3)
	assert.Equal(t, "A", s.Missions[0].ID)
	assert.Equal(t, "B", s.Missions[1].ID)
	assert.Equal(t, "C", s.Missions[2].ID)
	assert.Equal(t, s, Compute(ix, map[string]int64{"A": 50}))
}
