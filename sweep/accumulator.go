package sweep

import (
	"github.com/google/btree"

	"github.com/go-topology/topocheck/numeric"
	"github.com/go-topology/topocheck/options"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/segment"
)

// accumulator collects classified pairwise intersection results into
// deduplicated per-kind sets, backed by an ordered btree rather than one
// tagged-union result set, so each of the three result kinds dedups
// independently.
type accumulator struct {
	overlaps *btree.BTreeG[segment.Segment]
	// properCandidates holds points seen as a proper crossing by at least
	// one pair; a point is only truly proper if it never also shows up as
	// an improper incidence from some other concurrent pair.
	properCandidates *btree.BTreeG[point.Point]
	improper         *btree.BTreeG[point.Point]
}

func newAccumulator() *accumulator {
	return &accumulator{
		overlaps:         btree.NewG(2, segmentLess),
		properCandidates: btree.NewG(2, pointLess),
		improper:         btree.NewG(2, pointLess),
	}
}

func pointLess(a, b point.Point) bool {
	const epsilon = 0
	if numeric.FloatLessThan(a.X(), b.X(), epsilon) {
		return true
	}
	if numeric.FloatGreaterThan(a.X(), b.X(), epsilon) {
		return false
	}
	return numeric.FloatLessThan(a.Y(), b.Y(), epsilon)
}

// segmentLess orders segments by their lower-then-upper endpoint,
// irrespective of the direction the endpoints were supplied in, so that an
// overlap reported as A-B and one reported as B-A collide in the tree.
func segmentLess(s1, s2 segment.Segment) bool {
	l1, u1 := canonicalEndpoints(s1)
	l2, u2 := canonicalEndpoints(s2)
	if pointLess(l1, l2) {
		return true
	}
	if pointLess(l2, l1) {
		return false
	}
	return pointLess(u1, u2)
}

func canonicalEndpoints(s segment.Segment) (lower, upper point.Point) {
	a, b := s.Points()
	if pointLess(a, b) {
		return a, b
	}
	return b, a
}

func (acc *accumulator) addOverlap(overlap segment.Segment, opts ...options.GeometryOptionsFunc) {
	acc.overlaps.ReplaceOrInsert(overlap)
}

func (acc *accumulator) addProperCandidate(p point.Point, opts ...options.GeometryOptionsFunc) {
	acc.properCandidates.ReplaceOrInsert(p)
}

func (acc *accumulator) addImproper(p point.Point, opts ...options.GeometryOptionsFunc) {
	acc.improper.ReplaceOrInsert(p)
}

func (acc *accumulator) result() Result {
	var res Result

	acc.overlaps.Ascend(func(s segment.Segment) bool {
		res.CollinearOverlaps = append(res.CollinearOverlaps, s)
		return true
	})

	acc.improper.Ascend(func(p point.Point) bool {
		res.ImproperPoints = append(res.ImproperPoints, p)
		return true
	})

	// A coordinate that shows up as both a proper crossing (for one pair)
	// and an improper touch (for another, concurrent pair) is reported only
	// as improper.
	acc.properCandidates.Ascend(func(p point.Point) bool {
		if _, found := acc.improper.Get(p); !found {
			res.ProperPoints = append(res.ProperPoints, p)
		}
		return true
	})

	return res
}
