package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet_MergesOverlapping(t *testing.T) {
	s, err := NewSet([]Interval{{Begin: 50, End: 150}, {Begin: 0, End: 100}})
	require.NoError(t, err)
	assert.Equal(t, []Interval{{Begin: 0, End: 150}}, s.Intervals())
}

func TestNewSet_KeepsTouchingSeparate(t *testing.T) {
	s, err := NewSet([]Interval{{Begin: 0, End: 100}, {Begin: 100, End: 200}})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestNewSet_RejectsInverted(t *testing.T) {
	_, err := NewSet([]Interval{{Begin: 10, End: 5}})
	assert.Error(t, err)
}

func TestCovering(t *testing.T) {
	s := MustSet(Interval{Begin: 0, End: 3600}, Interval{Begin: 7200, End: 10800})

	cases := []struct {
		name string
		span Interval
		want bool
	}{
		{"exact fit", Interval{0, 3600}, true},
		{"inside", Interval{100, 200}, true},
		{"end at bound", Interval{1000, 3600}, true},
		{"one past end", Interval{0, 3601}, false},
		{"before first", Interval{-10, 5}, false},
		{"straddles gap", Interval{3000, 7500}, false},
		{"inside second", Interval{7200, 10800}, true},
		{"in gap", Interval{4000, 5000}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := s.Covering(tc.span)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestCovering_NeverSpansTwoIntervals(t *testing.T) {
	// The union [0,200) is covered, but no single interval contains [50,150].
	s := MustSet(Interval{Begin: 0, End: 100}, Interval{Begin: 100, End: 200})
	_, ok := s.Covering(Interval{Begin: 50, End: 150})
	assert.False(t, ok)
}

func TestOverlapping(t *testing.T) {
	s := MustSet(Interval{Begin: 100, End: 200}, Interval{Begin: 300, End: 400})

	iv, ok := s.Overlapping(Interval{Begin: 150, End: 350})
	require.True(t, ok)
	assert.Equal(t, Interval{Begin: 100, End: 200}, iv)

	_, ok = s.Overlapping(Interval{Begin: 200, End: 300})
	assert.False(t, ok, "touching at both bounds is not an overlap")

	iv, ok = s.Overlapping(Interval{Begin: 399, End: 500})
	require.True(t, ok)
	assert.Equal(t, Interval{Begin: 300, End: 400}, iv)
}

func TestTotalDuration(t *testing.T) {
	s := MustSet(Interval{Begin: 0, End: 100}, Interval{Begin: 200, End: 250})
	assert.Equal(t, int64(150), s.TotalDuration())
}
