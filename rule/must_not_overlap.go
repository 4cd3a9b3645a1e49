package rule

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
	"github.com/go-topology/topocheck/segment"
	"github.com/go-topology/topocheck/spatialindex"
	"github.com/go-topology/topocheck/sweep"
	"github.com/go-topology/topocheck/topology"
)

// MustNotOverlapPolygons reports, for every unordered pair of distinct
// input polygons whose envelopes intersect, the boolean intersection of
// that pair when it has positive area.
func MustNotOverlapPolygons(polygons []polygon.Polygon) topology.Result {
	idx := spatialindex.Build(polygons)
	var errs []polygon.Polygon
	for _, pr := range idx.SelfCandidatePairs() {
		inter, ok := polygons[pr.A].Intersection(polygons[pr.B])
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

// MustNotOverlapPoints reports the coordinates that occur as the equal
// value of at least two distinct input points, each coordinate reported
// once.
func MustNotOverlapPoints(points []point.Point) topology.Result {
	idx := spatialindex.Build(wrapPoints(points))
	var errs []point.Point
	for _, pr := range idx.SelfCandidatePairs() {
		a, b := points[pr.A], points[pr.B]
		if a.Eq(b) && !containsPoint(errs, a) {
			errs = append(errs, a)
		}
	}
	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorPoint(errs))
}

// MustNotOverlapLineStrings flattens every linestring into its constituent
// segments, runs the sweep kernel, and reports the collinear overlaps — a
// pair of distinct segments sharing a 1-D overlap — as two-vertex
// linestrings. Crossings are out of scope here; must-not-intersect reports
// those.
func MustNotOverlapLineStrings(lines []*linestring.LineString) topology.Result {
	var segs []segment.Segment
	for _, l := range lines {
		segs = append(segs, l.Segments()...)
	}
	res := sweep.Intersect(segs)
	if len(res.CollinearOverlaps) == 0 {
		return topology.Valid()
	}
	var errs []*linestring.LineString
	for _, ov := range res.CollinearOverlaps {
		a, b := ov.Points()
		errs = append(errs, linestring.New(a, b))
	}
	return topology.Errors(topology.ErrorLineString(errs))
}
