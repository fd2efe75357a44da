package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antennaops/trackcheck/core/interval"
)

func TestNewCombination(t *testing.T) {
	c, err := NewCombination([]ResourceID{"DSS-26", "DSS-24", "DSS-26"})
	require.NoError(t, err)
	assert.Equal(t, "DSS-24_DSS-26", c.ID())
	assert.Equal(t, []ResourceID{"DSS-24", "DSS-26"}, c.Resources())

	_, err = NewCombination(nil)
	assert.Error(t, err)
}

func TestCombinationEqual_OrderInsensitive(t *testing.T) {
	a, err := NewCombination([]ResourceID{"DSS-24", "DSS-26"})
	require.NoError(t, err)
	b, err := ParseCombinationID("DSS-26_DSS-24")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestRequestValidate(t *testing.T) {
	single, err := NewCombination([]ResourceID{"DSS-14"})
	require.NoError(t, err)
	vis := Visibility{Combination: single, Windows: interval.MustSet(interval.Interval{Begin: 0, End: 3600})}

	req := Request{TrackID: "R1", Mission: "M1", MinDuration: 600, MaxDuration: 3600, Visibilities: []Visibility{vis}}
	assert.NoError(t, req.Validate())

	req.MinDuration = 4000
	assert.Error(t, req.Validate(), "minimum above maximum")

	req.MinDuration = 600
	req.Visibilities = nil
	assert.Error(t, req.Validate(), "no combinations")
}

func TestRequestSegmentMinimum(t *testing.T) {
	req := Request{MinDuration: 1800, MinSegment: 300}
	assert.Equal(t, int64(1800), req.SegmentMinimum())
	req.Splittable = true
	assert.Equal(t, int64(300), req.SegmentMinimum())
}

func TestTrackValidate(t *testing.T) {
	c, err := ParseCombinationID("DSS-14")
	require.NoError(t, err)
	tr := Track{TrackID: "R1", Combination: c, StartTime: 0, TrackingOn: 60, TrackingOff: 3600, EndTime: 3660}
	assert.NoError(t, tr.Validate())
	assert.Equal(t, int64(3540), tr.TrackingDuration())

	tr.TrackingOff = 30
	assert.Error(t, tr.Validate())
}
