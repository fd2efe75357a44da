package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antennaops/trackcheck/core/fairness"
	"github.com/antennaops/trackcheck/core/validate"
)

func sampleReport() Report {
	score := int64(3500)
	return Report{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		TimeUnit:    "seconds",
		Verdict:     VerdictInvalid,
		Violations: []validate.Violation{
			{Kind: validate.OutsideViewPeriod, TrackID: "R1", TrackIndex: 0, Detail: "span outside view period"},
		},
		TotalDuration:     3600,
		SatisfiedRequests: 1,
		AcceptedTracks:    1,
		Fairness:          fairness.Summary{URMS: 0.5, UMax: 1, Missions: []fairness.Mission{{ID: "M1", Requested: 100, Satisfied: 0, Unsatisfied: 1}}},
		ReportedScore:     &score,
		ScoreMismatch:     true,
	}
}

func TestWriteText_Compact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(), false))
	out := buf.String()
	assert.Contains(t, out, "verdict: INVALID")
	assert.Contains(t, out, "total scheduled duration: 3600 seconds")
	assert.Contains(t, out, "MISMATCH")
	assert.NotContains(t, out, "mission M1")
}

func TestWriteText_Verbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(), true))
	out := buf.String()
	assert.Contains(t, out, "OutsideViewPeriod track[0] R1")
	assert.Contains(t, out, "mission M1: requested=100 satisfied=0 unsatisfied=1.0000")
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "INVALID", decoded["verdict"])

	violations, ok := decoded["violations"].([]any)
	require.True(t, ok)
	first := violations[0].(map[string]any)
	assert.Equal(t, "OutsideViewPeriod", first["kind"], "kinds marshal as names")
}
