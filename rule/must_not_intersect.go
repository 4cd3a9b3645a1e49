package rule

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/segment"
	"github.com/go-topology/topocheck/sweep"
	"github.com/go-topology/topocheck/topology"
)

// MustNotIntersect explodes lines into segments, runs the sweep kernel, and
// reports every proper crossing plus every improper touch that is a
// coincidence of inner (non-endpoint) vertices. An improper touch where a
// linestring's overall start/end simply lands on another linestring is a
// legitimate junction and is not reported; an improper touch is an error
// only when the point occurs at least twice among every linestring's inner
// (bend) vertices — i.e. a bend vertex of one linestring coincides with a
// bend vertex of another (or of itself).
func MustNotIntersect(lines []*linestring.LineString) topology.Result {
	var segs []segment.Segment
	for _, l := range lines {
		segs = append(segs, l.Segments()...)
	}
	res := sweep.Intersect(segs)

	var innerVertices []point.Point
	for _, l := range lines {
		if len(l.Coords) > 2 {
			innerVertices = append(innerVertices, l.Coords[1:len(l.Coords)-1]...)
		}
	}

	var errPoints []point.Point
	errPoints = append(errPoints, res.ProperPoints...)
	for _, p := range res.ImproperPoints {
		if countEq(innerVertices, p) >= 2 {
			errPoints = append(errPoints, p)
		}
	}

	var errLines []*linestring.LineString
	for _, ov := range res.CollinearOverlaps {
		a, b := ov.Points()
		errLines = append(errLines, linestring.New(a, b))
	}

	if len(errPoints) == 0 && len(errLines) == 0 {
		return topology.Valid()
	}

	var errs []topology.Error
	if len(errPoints) > 0 {
		errs = append(errs, topology.ErrorPoint(errPoints))
	}
	if len(errLines) > 0 {
		errs = append(errs, topology.ErrorLineString(errLines))
	}
	return topology.Errors(errs...)
}

func countEq(pts []point.Point, p point.Point) int {
	n := 0
	for _, q := range pts {
		if p.Eq(q) {
			n++
		}
	}
	return n
}
