package rule

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/spatialindex"
	"github.com/go-topology/topocheck/topology"
)

// MustNotSelfOverlap enumerates each linestring's own segment pairs
// independently and reports any pair where one segment contains the other.
func MustNotSelfOverlap(lines []*linestring.LineString) topology.Result {
	var errs []*linestring.LineString
	for _, l := range lines {
		segs := l.Segments()
		idx := spatialindex.Build(segs)
		for _, pr := range idx.SelfCandidatePairs() {
			s, o := segs[pr.A], segs[pr.B]
			switch {
			case s.Contains(o):
				a, b := o.Points()
				errs = append(errs, linestring.New(a, b))
			case o.Contains(s):
				a, b := s.Points()
				errs = append(errs, linestring.New(a, b))
			}
		}
	}
	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(topology.ErrorLineString(errs))
}
