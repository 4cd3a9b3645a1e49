package rule

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/segment"
	"github.com/go-topology/topocheck/sweep"
	"github.com/go-topology/topocheck/topology"
)

// MustNotHaveDangles computes the set of all linestring endpoints, runs the
// sweep kernel over every segment, and reports the endpoints that are not
// incident to any other linestring's segment as an improper touch — i.e.
// the endpoints not covered by the kernel's improper-points set.
func MustNotHaveDangles(lines []*linestring.LineString) topology.Result {
	var segs []segment.Segment
	var endpoints []point.Point
	for _, l := range lines {
		segs = append(segs, l.Segments()...)
		endpoints = append(endpoints, l.Start(), l.End())
	}
	endpoints = dedupPoints(endpoints)

	res := sweep.Intersect(segs)

	var dangles []point.Point
	for _, e := range endpoints {
		if !containsPoint(res.ImproperPoints, e) {
			dangles = append(dangles, e)
		}
	}

	if len(dangles) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorPoint(dangles))
}
