package rule

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
	"github.com/go-topology/topocheck/segment"
	"github.com/go-topology/topocheck/spatialindex"
	"github.com/go-topology/topocheck/topology"
)

// MustNotOverlapWithPolygons reports the positive-area boolean
// intersections between every polygon in self and every polygon in other,
// via the self×other candidate pairs (no self-vs-self checking).
func MustNotOverlapWithPolygons(self, other []polygon.Polygon) topology.Result {
	selfIdx := spatialindex.Build(self)
	otherIdx := spatialindex.Build(other)
	var errs []polygon.Polygon
	for _, pr := range selfIdx.CandidatePairs(otherIdx) {
		inter, ok := self[pr.A].Intersection(other[pr.B])
		if !ok {
			continue
		}
		if inter.Area() > 0 {
			errs = append(errs, inter)
		}
	}
	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorPolygon(errs))
}

// MustNotOverlapWithPoints reports the points of self that coincide with
// some point of other.
func MustNotOverlapWithPoints(self, other []point.Point) topology.Result {
	selfIdx := spatialindex.Build(wrapPoints(self))
	otherIdx := spatialindex.Build(wrapPoints(other))
	var errs []point.Point
	for _, pr := range selfIdx.CandidatePairs(otherIdx) {
		a, b := self[pr.A], other[pr.B]
		if a.Eq(b) && !containsPoint(errs, a) {
			errs = append(errs, a)
		}
	}
	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorPoint(errs))
}

// MustNotOverlapWithLineStrings reports the segments of other that are
// contained in some segment of self.
func MustNotOverlapWithLineStrings(self, other []*linestring.LineString) topology.Result {
	var selfSegs, otherSegs []segment.Segment
	for _, l := range self {
		selfSegs = append(selfSegs, l.Segments()...)
	}
	for _, l := range other {
		otherSegs = append(otherSegs, l.Segments()...)
	}

	selfIdx := spatialindex.Build(selfSegs)
	otherIdx := spatialindex.Build(otherSegs)

	var errs []*linestring.LineString
	for _, pr := range selfIdx.CandidatePairs(otherIdx) {
		s, o := selfSegs[pr.A], otherSegs[pr.B]
		if s.Contains(o) {
			a, b := o.Points()
			errs = append(errs, linestring.New(a, b))
		}
	}
	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorLineString(errs))
}
