// Package interval provides the half-open time interval primitives shared by
// visibility containment, maintenance exclusion and overlap detection. The
// convention is chosen once here: an Interval covers [Begin, End) and two
// intervals touching at a boundary do not overlap.
package interval

import (
	"fmt"
	"sort"
)

// Interval is a half-open time span [Begin, End) in the instance time unit.
type Interval struct {
	Begin int64
	End   int64
}

// Duration returns End - Begin.
func (iv Interval) Duration() int64 { return iv.End - iv.Begin }

// Empty reports whether the interval spans no time.
func (iv Interval) Empty() bool { return iv.End <= iv.Begin }

// Overlaps reports whether the two half-open spans intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Begin < other.End && other.Begin < iv.End
}

// Contains reports whether other lies entirely within iv. The end bound is
// inclusive: a span ending exactly at iv.End is still contained.
func (iv Interval) Contains(other Interval) bool {
	return other.Begin >= iv.Begin && other.End <= iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Begin, iv.End)
}

// Set is an immutable, sorted list of disjoint intervals supporting
// logarithmic containment and overlap queries.
type Set struct {
	ivs []Interval
}

// NewSet builds a Set from arbitrary source intervals. Inverted intervals are
// rejected; overlapping source intervals are merged. Intervals that merely
// touch at a boundary stay separate, so a gap of zero width is preserved and
// a span crossing it is not contained.
func NewSet(ivs []Interval) (Set, error) {
	for _, iv := range ivs {
		if iv.End < iv.Begin {
			return Set{}, fmt.Errorf("inverted interval %s", iv)
		}
	}
	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Begin != sorted[j].Begin {
			return sorted[i].Begin < sorted[j].Begin
		}
		return sorted[i].End < sorted[j].End
	})
	merged := make([]Interval, 0, len(sorted))
	for _, iv := range sorted {
		if n := len(merged); n > 0 && iv.Begin < merged[n-1].End {
			if iv.End > merged[n-1].End {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return Set{ivs: merged}, nil
}

// MustSet is a NewSet that panics on malformed input. Test helper.
func MustSet(ivs ...Interval) Set {
	s, err := NewSet(ivs)
	if err != nil {
		panic(err)
	}
	return s
}

// Intervals returns the sorted disjoint intervals. Callers must not mutate
// the returned slice.
func (s Set) Intervals() []Interval { return s.ivs }

// Len returns the number of disjoint intervals in the set.
func (s Set) Len() int { return len(s.ivs) }

// TotalDuration returns the summed duration of all intervals.
func (s Set) TotalDuration() int64 {
	var total int64
	for _, iv := range s.ivs {
		total += iv.Duration()
	}
	return total
}

// Covering returns the single interval containing span, if any. A span can
// never be covered by the union of two disjoint intervals, so only the last
// interval starting at or before span.Begin is a candidate.
func (s Set) Covering(span Interval) (Interval, bool) {
	i := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].Begin > span.Begin })
	if i == 0 {
		return Interval{}, false
	}
	if cand := s.ivs[i-1]; cand.Contains(span) {
		return cand, true
	}
	return Interval{}, false
}

// Overlapping returns the first interval intersecting span, if any.
func (s Set) Overlapping(span Interval) (Interval, bool) {
	// First interval ending after span.Begin is the only candidate start.
	i := sort.Search(len(s.ivs), func(i int) bool { return s.ivs[i].End > span.Begin })
	if i < len(s.ivs) && s.ivs[i].Overlaps(span) {
		return s.ivs[i], true
	}
	return Interval{}, false
}
