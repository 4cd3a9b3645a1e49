package rule

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/polygon"
	"github.com/go-topology/topocheck/segment"
	"github.com/go-topology/topocheck/spatialindex"
	"github.com/go-topology/topocheck/topology"
)

// MustNotHaveGaps explodes every ring — exterior and interior — of every
// polygon into segments, indexes them, and reports any segment covered by
// fewer than two indexed segments (itself plus a coincident neighbor from
// an adjacent ring). In a gap-free coverage every interior boundary
// segment appears in exactly two ring traversals. Holes are not
// special-cased, so a hole ring's own boundary is reported like any other
// uncovered edge — this also means an uncovered dataset perimeter reads
// identically to a genuine interior gap; there is no way to tell the two
// apart from ring coverage counts alone.
func MustNotHaveGaps(polygons []polygon.Polygon) topology.Result {
	var segs []segment.Segment
	for _, p := range polygons {
		segs = append(segs, p.Outer.Segments()...)
		for _, h := range p.Holes {
			segs = append(segs, h.Segments()...)
		}
	}

	idx := spatialindex.Build(segs)

	var errs []*linestring.LineString
	for _, s := range segs {
		hits := idx.LocateInEnvelope(s.Envelope())
		count := 0
		for _, j := range hits {
			if s.Contains(segs[j]) {
				count++
			}
			if count >= 2 {
				break
			}
		}
		if count < 2 {
			a, b := s.Points()
			errs = append(errs, linestring.New(a, b))
		}
	}

	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorLineString(errs))
}
