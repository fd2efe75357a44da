package problem

import (
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/antennaops/trackcheck/core/interval"
	"github.com/antennaops/trackcheck/core/model"
)

// instanceRequest is the raw JSON shape of one request in the problem
// instance document, keyed by track id at the top level.
type instanceRequest struct {
	Subject      string                  `json:"subject"`
	Mission      string                  `json:"mission"`
	MinDuration  int64                   `json:"min_duration"`
	Duration     int64                   `json:"duration"`
	SetupTime    int64                   `json:"setup_time"`
	TeardownTime int64                   `json:"teardown_time"`
	Splittable   bool                    `json:"splittable"`
	MinSegment   int64                   `json:"min_segment"`
	ViewPeriods  map[string][]viewPeriod `json:"view_periods"`
}

// viewPeriod is one visibility interval. Rise and set are carried by some
// instances alongside begin/end but only the begin/end pair is load-bearing
// for containment, so they are ignored here.
type viewPeriod struct {
	Begin int64  `json:"begin"`
	End   int64  `json:"end"`
	Rise  *int64 `json:"rise,omitempty"`
	Set   *int64 `json:"set,omitempty"`
}

// ReadInstance decodes a problem instance document into typed requests.
func ReadInstance(r io.Reader) ([]model.Request, error) {
	var doc map[string]instanceRequest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, malformedWrap(DocInstance, err, "decode")
	}
	ids := make([]string, 0, len(doc))
	for id := range doc {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	requests := make([]model.Request, 0, len(doc))
	for _, id := range ids {
		raw := doc[id]
		req, err := buildRequest(id, raw)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// LoadInstanceFile reads and decodes the instance document at path.
func LoadInstanceFile(path string) ([]model.Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, malformedWrap(DocInstance, err, "open %s", path)
	}
	defer f.Close()
	return ReadInstance(f)
}

func buildRequest(trackID string, raw instanceRequest) (model.Request, error) {
	mission := raw.Mission
	if mission == "" {
		mission = raw.Subject
	}
	if mission == "" {
		return model.Request{}, malformed(DocInstance, "request %s has no mission or subject", trackID)
	}
	if len(raw.ViewPeriods) == 0 {
		return model.Request{}, malformed(DocInstance, "request %s has no allowed resource combinations", trackID)
	}

	combos := make([]string, 0, len(raw.ViewPeriods))
	for id := range raw.ViewPeriods {
		combos = append(combos, id)
	}
	sort.Strings(combos)

	visibilities := make([]model.Visibility, 0, len(combos))
	for _, comboID := range combos {
		combo, err := model.ParseCombinationID(comboID)
		if err != nil {
			return model.Request{}, malformedWrap(DocInstance, err, "request %s combination %q", trackID, comboID)
		}
		periods := raw.ViewPeriods[comboID]
		ivs := make([]interval.Interval, 0, len(periods))
		for _, p := range periods {
			ivs = append(ivs, interval.Interval{Begin: p.Begin, End: p.End})
		}
		set, err := interval.NewSet(ivs)
		if err != nil {
			return model.Request{}, malformedWrap(DocInstance, err, "request %s combination %s view periods", trackID, combo)
		}
		visibilities = append(visibilities, model.Visibility{Combination: combo, Windows: set})
	}

	return model.Request{
		TrackID:      trackID,
		Mission:      mission,
		MinDuration:  raw.MinDuration,
		MaxDuration:  raw.Duration,
		SetupTime:    raw.SetupTime,
		TeardownTime: raw.TeardownTime,
		Splittable:   raw.Splittable,
		MinSegment:   raw.MinSegment,
		Visibilities: visibilities,
	}, nil
}
