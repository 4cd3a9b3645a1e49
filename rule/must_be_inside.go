package rule

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
	"github.com/go-topology/topocheck/segment"
	"github.com/go-topology/topocheck/spatialindex"
	"github.com/go-topology/topocheck/topology"
)

func crossesProperly(a, b segment.Segment) bool {
	result := a.Intersection(b)
	return result.Type == segment.IntersectionPoint && result.Proper
}

// MustBeInsidePoints reports the points that no polygon in others strictly
// contains. Containment is strict: interior only, boundary points count as
// outside.
func MustBeInsidePoints(points []point.Point, others []polygon.Polygon) topology.Result {
	idx := spatialindex.Build(others)

	var errs []point.Point
	for _, p := range points {
		if !anyPolygonContainsPoint(idx, others, p) {
			errs = append(errs, p)
		}
	}
	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorPoint(errs))
}

// MustBeInsideLineStrings reports the linestrings that no polygon in
// others fully contains: every coordinate must lie strictly inside the
// polygon, and no segment of the linestring may cross the polygon's
// boundary (a linestring can have every vertex inside a concave polygon
// while one of its edges still bulges outside through a notch).
func MustBeInsideLineStrings(lines []*linestring.LineString, others []polygon.Polygon) topology.Result {
	idx := spatialindex.Build(others)

	var errs []*linestring.LineString
	for _, l := range lines {
		if !anyPolygonContainsLineString(idx, others, l) {
			errs = append(errs, l)
		}
	}
	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorLineString(errs))
}

func anyPolygonContainsPoint(idx *spatialindex.Index, polygons []polygon.Polygon, p point.Point) bool {
	env := spatialindex.Envelope{MinX: p.X(), MinY: p.Y(), MaxX: p.X(), MaxY: p.Y()}
	for _, i := range idx.LocateInEnvelope(env) {
		if polygons[i].ContainsPoint(p) {
			return true
		}
	}
	return false
}

func anyPolygonContainsLineString(idx *spatialindex.Index, polygons []polygon.Polygon, l *linestring.LineString) bool {
	for _, i := range idx.LocateInEnvelope(l.Envelope()) {
		if polygonFullyContainsLineString(polygons[i], l) {
			return true
		}
	}
	return false
}

func polygonFullyContainsLineString(poly polygon.Polygon, l *linestring.LineString) bool {
	for _, c := range l.Coords {
		if !poly.ContainsPoint(c) {
			return false
		}
	}
	for _, s := range l.Segments() {
		for _, b := range poly.Outer.Segments() {
			if crossesProperly(s, b) {
				return false
			}
		}
		for _, h := range poly.Holes {
			for _, b := range h.Segments() {
				if crossesProperly(s, b) {
					return false
				}
			}
		}
	}
	return true
}
