package segment

import (
	"testing"

	"github.com/go-topology/topocheck/point"
	"github.com/stretchr/testify/assert"
)

func TestSegment_Intersects(t *testing.T) {
	tests := map[string]struct {
		s1, s2   Segment
		expected bool
	}{
		"crossing X": {
			s1:       New(0, 0, 10, 10),
			s2:       New(0, 10, 10, 0),
			expected: true,
		},
		"parallel disjoint": {
			s1:       New(0, 0, 10, 0),
			s2:       New(0, 1, 10, 1),
			expected: false,
		},
		"touching at endpoint": {
			s1:       New(0, 0, 10, 0),
			s2:       New(10, 0, 10, 10),
			expected: true,
		},
		"collinear overlapping": {
			s1:       New(0, 0, 10, 0),
			s2:       New(5, 0, 15, 0),
			expected: true,
		},
		"collinear disjoint": {
			s1:       New(0, 0, 10, 0),
			s2:       New(20, 0, 30, 0),
			expected: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.s1.Intersects(tc.s2))
			assert.Equal(t, tc.expected, tc.s2.Intersects(tc.s1))
		})
	}
}

func TestSegment_Intersection_ProperPoint(t *testing.T) {
	s1 := New(0, 0, 10, 10)
	s2 := New(0, 10, 10, 0)

	got := s1.Intersection(s2)
	assert.Equal(t, IntersectionPoint, got.Type)
	assert.True(t, got.Proper)
	assert.True(t, got.Point.Eq(point.New(5, 5)))
}

func TestSegment_Intersection_ImproperAtEndpoint(t *testing.T) {
	s1 := New(0, 0, 10, 0)
	s2 := New(10, 0, 10, 10)

	got := s1.Intersection(s2)
	assert.Equal(t, IntersectionPoint, got.Type)
	assert.False(t, got.Proper)
	assert.True(t, got.Point.Eq(point.New(10, 0)))
}

func TestSegment_Intersection_None(t *testing.T) {
	s1 := New(0, 0, 10, 0)
	s2 := New(0, 5, 10, 5)

	got := s1.Intersection(s2)
	assert.Equal(t, IntersectionNone, got.Type)
}

func TestSegment_Intersection_CollinearOverlap(t *testing.T) {
	s1 := New(0, 0, 10, 0)
	s2 := New(5, 0, 15, 0)

	got := s1.Intersection(s2)
	assert.Equal(t, IntersectionOverlap, got.Type)
	assert.True(t, got.Overlap.A().Eq(point.New(5, 0)) || got.Overlap.B().Eq(point.New(5, 0)))
	assert.True(t, got.Overlap.A().Eq(point.New(10, 0)) || got.Overlap.B().Eq(point.New(10, 0)))
}

func TestSegment_Intersection_CollinearTouchAtPoint(t *testing.T) {
	s1 := New(0, 0, 10, 0)
	s2 := New(10, 0, 20, 0)

	got := s1.Intersection(s2)
	assert.Equal(t, IntersectionPoint, got.Type)
	assert.True(t, got.Point.Eq(point.New(10, 0)))
}

func TestSegment_Intersection_CollinearDisjoint(t *testing.T) {
	s1 := New(0, 0, 10, 0)
	s2 := New(20, 0, 30, 0)

	got := s1.Intersection(s2)
	assert.Equal(t, IntersectionNone, got.Type)
}
