package segment

import (
	"testing"

	"github.com/go-topology/topocheck/options"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/types"
	"github.com/stretchr/testify/assert"
)

func TestSegment_Length(t *testing.T) {
	s := New(0, 0, 3, 4)
	assert.Equal(t, 5.0, s.Length())
}

func TestSegment_Center(t *testing.T) {
	s := New(0, 0, 4, 2)
	assert.True(t, s.Center().Eq(point.New(2, 1)))
}

func TestSegment_IsDegenerate(t *testing.T) {
	assert.True(t, New(1, 1, 1, 1).IsDegenerate())
	assert.False(t, New(1, 1, 2, 1).IsDegenerate())
}

func TestSegment_ContainsPoint(t *testing.T) {
	tests := map[string]struct {
		seg      Segment
		p        point.Point
		opts     []options.GeometryOptionsFunc
		expected bool
	}{
		"midpoint on segment": {
			seg:      New(0, 0, 10, 0),
			p:        point.New(5, 0),
			expected: true,
		},
		"endpoint on segment": {
			seg:      New(0, 0, 10, 0),
			p:        point.New(0, 0),
			expected: true,
		},
		"off segment": {
			seg:      New(0, 0, 10, 0),
			p:        point.New(5, 1),
			expected: false,
		},
		"off segment within epsilon": {
			seg:      New(0, 0, 10, 0),
			p:        point.New(5, 0.0001),
			opts:     []options.GeometryOptionsFunc{options.WithEpsilon(0.001)},
			expected: true,
		},
		"collinear but beyond endpoint": {
			seg:      New(0, 0, 10, 0),
			p:        point.New(15, 0),
			expected: false,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.seg.ContainsPoint(tc.p, tc.opts...))
		})
	}
}

func TestSegment_RelationshipToPoint(t *testing.T) {
	s := New(0, 0, 10, 0)
	assert.Equal(t, types.RelationshipIntersection, s.RelationshipToPoint(point.New(5, 0)))
	assert.Equal(t, types.RelationshipDisjoint, s.RelationshipToPoint(point.New(5, 1)))
}

func TestSegment_Eq(t *testing.T) {
	a := New(0, 0, 1, 1)
	b := New(0, 0, 1, 1)
	c := New(1, 1, 0, 0)

	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
	assert.True(t, a.EqUnordered(c))
}

func TestSegment_Contains(t *testing.T) {
	s := New(0, 0, 10, 0)
	sub := New(2, 0, 8, 0)
	offLine := New(2, 1, 8, 1)

	assert.True(t, s.Contains(sub))
	assert.True(t, s.Contains(s))
	assert.False(t, s.Contains(offLine))
	assert.False(t, sub.Contains(s))
}

func TestSegment_Reversed(t *testing.T) {
	s := New(0, 0, 1, 1)
	r := s.Reversed()
	assert.True(t, r.A().Eq(s.B()))
	assert.True(t, r.B().Eq(s.A()))
}

func TestSegment_ProjectPoint(t *testing.T) {
	s := New(0, 0, 10, 0)
	proj := s.ProjectPoint(point.New(5, 3))
	assert.True(t, proj.Eq(point.New(5, 0)))

	// beyond the end, clamps to the endpoint
	proj = s.ProjectPoint(point.New(20, 3))
	assert.True(t, proj.Eq(point.New(10, 0)))
}

func TestSegment_DistanceToPoint(t *testing.T) {
	s := New(0, 0, 10, 0)
	assert.Equal(t, 3.0, s.DistanceToPoint(point.New(5, 3)))
}
