package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/segment"
)

func TestIntersect_ProperCrossing(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, 0, 10, 10),
		segment.New(0, 10, 10, 0),
	}
	got := Intersect(segs)

	assert.Empty(t, got.CollinearOverlaps)
	assert.Empty(t, got.ImproperPoints)
	if assert.Len(t, got.ProperPoints, 1) {
		assert.True(t, got.ProperPoints[0].Eq(point.New(5, 5)))
	}
}

func TestIntersect_ChainedSegmentsShareImproperEndpoints(t *testing.T) {
	// three chained segments: shared endpoints between consecutive segments
	// are improper (endpoint touches, not crossings), and no proper
	// crossings exist.
	segs := []segment.Segment{
		segment.New(-21.95156, 64.14460, -21.95100, 64.14479),
		segment.New(-21.95100, 64.14479, -21.95044, 64.14527),
		segment.New(-21.95044, 64.14527, -21.951445, 64.145508),
	}
	got := Intersect(segs)

	assert.Empty(t, got.CollinearOverlaps)
	assert.Empty(t, got.ProperPoints)
	assert.Len(t, got.ImproperPoints, 2)
}

func TestIntersect_IdenticalSegmentsYieldOneOverlap(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, 0, 10, 0),
		segment.New(0, 0, 10, 0),
	}
	got := Intersect(segs)

	assert.Len(t, got.CollinearOverlaps, 1)
	assert.Empty(t, got.ProperPoints)
	assert.Empty(t, got.ImproperPoints)
}

func TestIntersect_TJunctionIsImproper(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, 0, 10, 0),
		segment.New(5, 0, 5, 10),
	}
	got := Intersect(segs)

	assert.Empty(t, got.ProperPoints)
	if assert.Len(t, got.ImproperPoints, 1) {
		assert.True(t, got.ImproperPoints[0].Eq(point.New(5, 0)))
	}
}

func TestIntersect_Deterministic(t *testing.T) {
	segs := []segment.Segment{
		segment.New(0, 0, 10, 10),
		segment.New(0, 10, 10, 0),
		segment.New(0, 0, 10, 0),
		segment.New(5, 0, 5, 10),
	}

	first := Intersect(segs)
	second := Intersect(segs)

	assert.ElementsMatch(t, first.ProperPoints, second.ProperPoints)
	assert.ElementsMatch(t, first.ImproperPoints, second.ImproperPoints)
	assert.ElementsMatch(t, first.CollinearOverlaps, second.CollinearOverlaps)
}
