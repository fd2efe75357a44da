// Package model defines the typed domain records of the verifier: physical
// resources, resource combinations, communication requests, maintenance
// windows and candidate tracks. All records are built once from the input
// documents and never mutated afterwards.
package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antennaops/trackcheck/core/interval"
)

// ResourceID identifies a single physical antenna.
type ResourceID string

// Combination is a deduplicated set of one or more resources that act in
// unison, either a single antenna or an arrayed group. Two combinations are
// equal iff their resource sets are equal; member order in the source data
// does not matter.
type Combination struct {
	id        string
	resources []ResourceID
}

// NewCombination builds a Combination from member resources. Members are
// deduplicated and sorted so that set equality reduces to id equality.
func NewCombination(resources []ResourceID) (Combination, error) {
	if len(resources) == 0 {
		return Combination{}, fmt.Errorf("combination has no resources")
	}
	uniq := make([]ResourceID, 0, len(resources))
	seen := make(map[ResourceID]struct{}, len(resources))
	for _, r := range resources {
		if r == "" {
			return Combination{}, fmt.Errorf("combination has an empty resource id")
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		uniq = append(uniq, r)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	parts := make([]string, len(uniq))
	for i, r := range uniq {
		parts[i] = string(r)
	}
	return Combination{id: strings.Join(parts, "_"), resources: uniq}, nil
}

// ParseCombinationID builds a Combination from an underscore-joined compound
// id such as "DSS-24_DSS-26".
func ParseCombinationID(id string) (Combination, error) {
	if strings.TrimSpace(id) == "" {
		return Combination{}, fmt.Errorf("empty combination id")
	}
	parts := strings.Split(id, "_")
	resources := make([]ResourceID, len(parts))
	for i, p := range parts {
		resources[i] = ResourceID(p)
	}
	return NewCombination(resources)
}

// ID returns the canonical underscore-joined identifier.
func (c Combination) ID() string { return c.id }

// Resources returns the sorted member resources. Callers must not mutate the
// returned slice.
func (c Combination) Resources() []ResourceID { return c.resources }

// Equal reports resource-set equality, insensitive to source order.
func (c Combination) Equal(other Combination) bool { return c.id == other.id }

func (c Combination) String() string { return c.id }

// Visibility pairs one allowed combination of a request with its view
// periods, kept as a disjoint sorted interval set.
type Visibility struct {
	Combination Combination
	Windows     interval.Set
}

// Request is one communication request of a mission, identified by its track
// identifier group.
type Request struct {
	TrackID      string
	Mission      string
	MinDuration  int64 // overall minimum tracking time
	MaxDuration  int64 // nominal/maximum tracking time
	SetupTime    int64
	TeardownTime int64
	Splittable   bool
	MinSegment   int64 // minimum duration of a single segment when split
	Visibilities []Visibility
}

// Validate checks the structural invariants of the request.
func (r Request) Validate() error {
	if r.TrackID == "" {
		return fmt.Errorf("request has no track id")
	}
	if r.MinDuration > r.MaxDuration {
		return fmt.Errorf("request %s: minimum duration %d exceeds maximum %d", r.TrackID, r.MinDuration, r.MaxDuration)
	}
	if r.SetupTime < 0 || r.TeardownTime < 0 {
		return fmt.Errorf("request %s: negative setup or teardown time", r.TrackID)
	}
	if len(r.Visibilities) == 0 {
		return fmt.Errorf("request %s has no allowed resource combinations", r.TrackID)
	}
	for _, v := range r.Visibilities {
		if len(v.Combination.Resources()) == 0 {
			return fmt.Errorf("request %s: combination with no resources", r.TrackID)
		}
	}
	return nil
}

// Visibility returns the view periods for the given combination, matched by
// resource-set equality.
func (r Request) Visibility(c Combination) (Visibility, bool) {
	for _, v := range r.Visibilities {
		if v.Combination.Equal(c) {
			return v, true
		}
	}
	return Visibility{}, false
}

// SegmentMinimum returns the minimum duration a single track segment must
// reach: the full request minimum when the request cannot be split, the
// per-segment minimum otherwise.
func (r Request) SegmentMinimum() int64 {
	if r.Splittable {
		return r.MinSegment
	}
	return r.MinDuration
}

// MaintenanceWindow marks one resource as unusable for a half-open span.
// Week and Year are source metadata and are never evaluated.
type MaintenanceWindow struct {
	Resource ResourceID
	Window   interval.Interval
	Week     int
	Year     int
}

// Track is one candidate schedule entry: an occupation of a resource
// combination on behalf of a request, with setup and teardown flanking the
// billable tracking span. Index is the position in the solution document and
// is used only for attribution in diagnostics.
type Track struct {
	Index       int
	TrackID     string
	Mission     string
	Combination Combination
	StartTime   int64
	TrackingOn  int64
	TrackingOff int64
	EndTime     int64
}

// Validate checks the timestamp ordering invariant.
func (t Track) Validate() error {
	if !(t.StartTime <= t.TrackingOn && t.TrackingOn <= t.TrackingOff && t.TrackingOff <= t.EndTime) {
		return fmt.Errorf("track %s: timestamps out of order (%d, %d, %d, %d)",
			t.TrackID, t.StartTime, t.TrackingOn, t.TrackingOff, t.EndTime)
	}
	return nil
}

// TrackingDuration returns the billable tracking time, setup and teardown
// excluded.
func (t Track) TrackingDuration() int64 { return t.TrackingOff - t.TrackingOn }

// Span returns the full resource occupation [StartTime, EndTime), including
// setup and teardown.
func (t Track) Span() interval.Interval {
	return interval.Interval{Begin: t.StartTime, End: t.EndTime}
}

// TrackingSpan returns the billable [TrackingOn, TrackingOff] span used for
// visibility containment.
func (t Track) TrackingSpan() interval.Interval {
	return interval.Interval{Begin: t.TrackingOn, End: t.TrackingOff}
}

func (t Track) String() string {
	return fmt.Sprintf("track[%d] %s on %s", t.Index, t.TrackID, t.Combination)
}
