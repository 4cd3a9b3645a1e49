package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-topology/topocheck/point"
)

func TestPolygon_Intersection_OverlappingSquares(t *testing.T) {
	a := New(square(0, 0, 10, 10))
	b := New(square(5, 5, 15, 15))

	result, ok := a.Intersection(b)
	if assert.True(t, ok) {
		assert.InDelta(t, 25.0, result.Area(), 1e-6)
		assert.True(t, result.ContainsPoint(point.New(7, 7)))
		assert.False(t, result.ContainsPoint(point.New(1, 1)))
	}
}

func TestPolygon_Intersection_Disjoint(t *testing.T) {
	a := New(square(0, 0, 10, 10))
	b := New(square(20, 20, 30, 30))

	_, ok := a.Intersection(b)
	assert.False(t, ok)
}

func TestPolygon_Intersection_FullyContained(t *testing.T) {
	a := New(square(0, 0, 10, 10))
	b := New(square(2, 2, 4, 4))

	result, ok := a.Intersection(b)
	if assert.True(t, ok) {
		assert.InDelta(t, 4.0, result.Area(), 1e-6)
	}
}
