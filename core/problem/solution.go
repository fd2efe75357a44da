package problem

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/antennaops/trackcheck/core/model"
)

// Solution is a decoded candidate schedule: the proposed tracks in document
// order, plus the solver's self-reported score when the document carries one.
// The reported score is never trusted; the verifier recomputes the score and
// flags a mismatch.
type Solution struct {
	Tracks        []model.Track
	ReportedScore *int64
}

// solutionTrack is the raw JSON shape of one track record. The combination
// may be given either as a resource list or as an underscore-joined compound
// id.
type solutionTrack struct {
	TrackID     string   `json:"track_id"`
	Mission     string   `json:"mission"`
	Resources   []string `json:"resources"`
	Combination string   `json:"combination,omitempty"`
	StartTime   int64    `json:"start_time"`
	TrackingOn  int64    `json:"tracking_on"`
	TrackingOff int64    `json:"tracking_off"`
	EndTime     int64    `json:"end_time"`
}

type solutionDoc struct {
	Tracks        []solutionTrack `json:"tracks"`
	ReportedScore *int64          `json:"reported_score,omitempty"`
}

// ReadSolution decodes a candidate solution. Both a bare track array and a
// {"tracks": [...], "reported_score": n} wrapper are accepted.
func ReadSolution(r io.Reader) (Solution, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Solution{}, malformedWrap(DocSolution, err, "read")
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	var doc solutionDoc
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(data, &doc.Tracks); err != nil {
			return Solution{}, malformedWrap(DocSolution, err, "decode track list")
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return Solution{}, malformedWrap(DocSolution, err, "decode")
		}
	}

	sol := Solution{ReportedScore: doc.ReportedScore}
	for i, raw := range doc.Tracks {
		track, err := buildTrack(i, raw)
		if err != nil {
			return Solution{}, err
		}
		sol.Tracks = append(sol.Tracks, track)
	}
	return sol, nil
}

// LoadSolutionFile reads and decodes the solution document at path.
func LoadSolutionFile(path string) (Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return Solution{}, malformedWrap(DocSolution, err, "open %s", path)
	}
	defer f.Close()
	return ReadSolution(f)
}

func buildTrack(index int, raw solutionTrack) (model.Track, error) {
	if raw.TrackID == "" {
		return model.Track{}, malformed(DocSolution, "track %d has no track id", index)
	}
	var combo model.Combination
	var err error
	switch {
	case len(raw.Resources) > 0:
		resources := make([]model.ResourceID, len(raw.Resources))
		for i, r := range raw.Resources {
			resources[i] = model.ResourceID(r)
		}
		combo, err = model.NewCombination(resources)
	case raw.Combination != "":
		combo, err = model.ParseCombinationID(raw.Combination)
	default:
		return model.Track{}, malformed(DocSolution, "track %d (%s) names no resources", index, raw.TrackID)
	}
	if err != nil {
		return model.Track{}, malformedWrap(DocSolution, err, "track %d (%s)", index, raw.TrackID)
	}

	track := model.Track{
		Index:       index,
		TrackID:     raw.TrackID,
		Mission:     raw.Mission,
		Combination: combo,
		StartTime:   raw.StartTime,
		TrackingOn:  raw.TrackingOn,
		TrackingOff: raw.TrackingOff,
		EndTime:     raw.EndTime,
	}
	if err := track.Validate(); err != nil {
		return model.Track{}, malformedWrap(DocSolution, err, "track %d", index)
	}
	return track, nil
}
