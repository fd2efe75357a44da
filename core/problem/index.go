// Package problem loads the problem instance, maintenance schedule and
// candidate solution documents into the typed model and indexes them for
// constraint checking.
package problem

import (
	"sort"

	"github.com/antennaops/trackcheck/core/interval"
	"github.com/antennaops/trackcheck/core/model"
)

// Index is the read-only lookup structure over one problem instance:
// requests keyed by track id, each with pre-sorted visibility sets, and
// per-resource maintenance downtime. It is built once and never mutated.
type Index struct {
	conv     Conventions
	requests map[string]model.Request
	order    []string
	maint    map[model.ResourceID]interval.Set
	windows  map[model.ResourceID][]model.MaintenanceWindow
}

// NewIndex builds an Index from typed requests and maintenance windows.
// Requests are validated here so malformed shapes fail at load rather than
// deep inside constraint checks.
func NewIndex(conv Conventions, requests []model.Request, windows []model.MaintenanceWindow) (*Index, error) {
	conv.SetDefaults()
	if err := conv.Validate(); err != nil {
		return nil, malformedWrap(DocInstance, err, "conventions")
	}
	ix := &Index{
		conv:     conv,
		requests: make(map[string]model.Request, len(requests)),
		maint:    make(map[model.ResourceID]interval.Set),
		windows:  make(map[model.ResourceID][]model.MaintenanceWindow),
	}
	for _, r := range requests {
		if err := r.Validate(); err != nil {
			return nil, malformedWrap(DocInstance, err, "request %s", r.TrackID)
		}
		if _, dup := ix.requests[r.TrackID]; dup {
			return nil, malformed(DocInstance, "duplicate track id %s", r.TrackID)
		}
		ix.requests[r.TrackID] = r
		ix.order = append(ix.order, r.TrackID)
	}
	sort.Strings(ix.order)

	byResource := make(map[model.ResourceID][]interval.Interval)
	for _, w := range windows {
		if w.Resource == "" {
			return nil, malformed(DocMaintenance, "window %s has no resource", w.Window)
		}
		byResource[w.Resource] = append(byResource[w.Resource], w.Window)
		ix.windows[w.Resource] = append(ix.windows[w.Resource], w)
	}
	for res, ivs := range byResource {
		set, err := interval.NewSet(ivs)
		if err != nil {
			return nil, malformedWrap(DocMaintenance, err, "resource %s", res)
		}
		ix.maint[res] = set
	}
	for _, ws := range ix.windows {
		sort.Slice(ws, func(i, j int) bool { return ws[i].Window.Begin < ws[j].Window.Begin })
	}
	return ix, nil
}

// Conventions returns the input conventions the index was built with.
func (ix *Index) Conventions() Conventions { return ix.conv }

// Request looks up a request by track id.
func (ix *Index) Request(trackID string) (model.Request, bool) {
	r, ok := ix.requests[trackID]
	return r, ok
}

// TrackIDs returns all known track ids in sorted order.
func (ix *Index) TrackIDs() []string { return ix.order }

// Requests returns all requests sorted by track id.
func (ix *Index) Requests() []model.Request {
	out := make([]model.Request, 0, len(ix.order))
	for _, id := range ix.order {
		out = append(out, ix.requests[id])
	}
	return out
}

// Maintenance returns the merged downtime set for one physical resource. The
// zero Set is returned for resources without downtime.
func (ix *Index) Maintenance(res model.ResourceID) interval.Set {
	return ix.maint[res]
}

// MaintenanceWindows returns the raw windows for one resource, sorted by
// begin time, for diagnostics.
func (ix *Index) MaintenanceWindows(res model.ResourceID) []model.MaintenanceWindow {
	return ix.windows[res]
}
