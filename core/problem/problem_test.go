package problem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antennaops/trackcheck/core/interval"
	"github.com/antennaops/trackcheck/core/model"
)

const sampleInstance = `{
  "R1": {
    "subject": "voyager",
    "mission": "VGR",
    "min_duration": 600,
    "duration": 3600,
    "setup_time": 60,
    "teardown_time": 30,
    "splittable": false,
    "min_segment": 0,
    "view_periods": {
      "DSS-14": [
        {"begin": 0, "end": 3600, "rise": -100, "set": 3700},
        {"begin": 7200, "end": 10800}
      ],
      "DSS-24_DSS-26": [
        {"begin": 1000, "end": 5000}
      ]
    }
  }
}`

func TestReadInstance(t *testing.T) {
	reqs, err := ReadInstance(strings.NewReader(sampleInstance))
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	r := reqs[0]
	assert.Equal(t, "R1", r.TrackID)
	assert.Equal(t, "VGR", r.Mission)
	assert.Equal(t, int64(600), r.MinDuration)
	assert.Equal(t, int64(3600), r.MaxDuration)
	require.Len(t, r.Visibilities, 2)

	single, err := model.ParseCombinationID("DSS-14")
	require.NoError(t, err)
	vis, ok := r.Visibility(single)
	require.True(t, ok)
	assert.Equal(t, 2, vis.Windows.Len())

	arrayed, err := model.ParseCombinationID("DSS-26_DSS-24")
	require.NoError(t, err)
	_, ok = r.Visibility(arrayed)
	assert.True(t, ok, "arrayed combination matched by resource set")
}

func TestReadInstance_NoCombinations(t *testing.T) {
	doc := `{"R1": {"mission": "VGR", "duration": 100, "view_periods": {}}}`
	_, err := ReadInstance(strings.NewReader(doc))
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, DocInstance, merr.Doc)
}

func TestReadInstance_MergesOverlappingViewPeriods(t *testing.T) {
	doc := `{"R1": {"mission": "VGR", "duration": 100, "view_periods": {
		"DSS-14": [{"begin": 0, "end": 100}, {"begin": 50, "end": 200}]}}}`
	reqs, err := ReadInstance(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, reqs[0].Visibilities[0].Windows.Len())
}

func TestReadMaintenance(t *testing.T) {
	csvDoc := "antenna,begin,end,week,year\nDSS-14,100,200,7,2025\nDSS-24,300,400\n"
	windows, err := ReadMaintenance(strings.NewReader(csvDoc))
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, model.ResourceID("DSS-14"), windows[0].Resource)
	assert.Equal(t, interval.Interval{Begin: 100, End: 200}, windows[0].Window)
	assert.Equal(t, 7, windows[0].Week)
	assert.Equal(t, 2025, windows[0].Year)
}

func TestReadMaintenance_BadRow(t *testing.T) {
	_, err := ReadMaintenance(strings.NewReader("DSS-14,abc,200\n"))
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, DocMaintenance, merr.Doc)
}

func TestReadSolution_BareArray(t *testing.T) {
	doc := `[
	  {"track_id": "R1", "mission": "VGR", "resources": ["DSS-14"],
	   "start_time": 0, "tracking_on": 60, "tracking_off": 3570, "end_time": 3600}
	]`
	sol, err := ReadSolution(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sol.Tracks, 1)
	assert.Nil(t, sol.ReportedScore)
	assert.Equal(t, "DSS-14", sol.Tracks[0].Combination.ID())
}

func TestReadSolution_WrapperWithReportedScore(t *testing.T) {
	doc := `{"reported_score": 3510, "tracks": [
	  {"track_id": "R1", "combination": "DSS-24_DSS-26",
	   "start_time": 0, "tracking_on": 60, "tracking_off": 3570, "end_time": 3600}
	]}`
	sol, err := ReadSolution(strings.NewReader(doc))
	require.NoError(t, err)
	require.NotNil(t, sol.ReportedScore)
	assert.Equal(t, int64(3510), *sol.ReportedScore)
	assert.Equal(t, []model.ResourceID{"DSS-24", "DSS-26"}, sol.Tracks[0].Combination.Resources())
}

func TestReadSolution_TimestampsOutOfOrder(t *testing.T) {
	doc := `[{"track_id": "R1", "resources": ["DSS-14"],
	  "start_time": 100, "tracking_on": 50, "tracking_off": 3570, "end_time": 3600}]`
	_, err := ReadSolution(strings.NewReader(doc))
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, DocSolution, merr.Doc)
}

func TestNewIndex(t *testing.T) {
	reqs, err := ReadInstance(strings.NewReader(sampleInstance))
	require.NoError(t, err)
	windows := []model.MaintenanceWindow{
		{Resource: "DSS-14", Window: interval.Interval{Begin: 5000, End: 6000}},
		{Resource: "DSS-14", Window: interval.Interval{Begin: 100, End: 200}},
	}
	ix, err := NewIndex(Conventions{}, reqs, windows)
	require.NoError(t, err)

	_, ok := ix.Request("R1")
	assert.True(t, ok)
	_, ok = ix.Request("R9")
	assert.False(t, ok)

	maint := ix.Maintenance("DSS-14")
	require.Equal(t, 2, maint.Len())
	assert.Equal(t, int64(100), maint.Intervals()[0].Begin, "maintenance sorted")
	assert.Zero(t, ix.Maintenance("DSS-24").Len())
	assert.Equal(t, "seconds", ix.Conventions().TimeUnit)
}

func TestNewIndex_DuplicateTrackID(t *testing.T) {
	combo, err := model.ParseCombinationID("DSS-14")
	require.NoError(t, err)
	req := model.Request{TrackID: "R1", Mission: "M", MaxDuration: 10,
		Visibilities: []model.Visibility{{
			Combination: combo,
			Windows:     interval.MustSet(interval.Interval{Begin: 0, End: 1}),
		}}}

	_, err = NewIndex(Conventions{}, []model.Request{req, req}, nil)
	var merr *MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Contains(t, merr.Detail, "duplicate")
}
