// Package sweep implements the planar intersection kernel: given a finite
// set of line segments, it partitions their pairwise intersections into
// collinear overlaps, proper crossings, and improper (endpoint) touches.
//
// The classification technique — canonicalize, classify pairwise, dedup
// into per-kind sets via an ordered tree — follows a classic sweepline
// intersection-results accumulator. Candidate-pair enumeration is pruned
// with [spatialindex] rather than a literal event-queue/status-structure
// advance: any implementation that enumerates all intersecting pairs and
// classifies each produces the same result, and this avoids reimplementing
// neighbor-advance bookkeeping this module cannot verify by running tests.
package sweep

import (
	"github.com/go-topology/topocheck/options"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/segment"
	"github.com/go-topology/topocheck/spatialindex"
)

// Result holds the classified output of [Intersect].
type Result struct {
	// CollinearOverlaps holds, for every pair of distinct input segments
	// sharing a colinear interval of positive length, the maximal overlap
	// segment between them. Deduplicated by endpoint pair.
	CollinearOverlaps []segment.Segment

	// ProperPoints holds every coordinate at which two distinct input
	// segments cross in the relative interior of both. Deduplicated by
	// coordinate.
	ProperPoints []point.Point

	// ImproperPoints holds every coordinate at which two distinct input
	// segments meet with at least one incidence at a segment endpoint.
	// Deduplicated by coordinate.
	ImproperPoints []point.Point
}

// Intersect computes the pairwise intersection classification of segments:
// a pair of identical segments yields one collinear overlap; three or more
// segments concurrent at one point are reported once, in the improper set
// iff at least one incidence there is a segment endpoint.
func Intersect(segments []segment.Segment, opts ...options.GeometryOptionsFunc) Result {
	live := make([]segment.Segment, 0, len(segments))
	for _, s := range segments {
		if !s.IsDegenerate() {
			live = append(live, s)
		}
	}

	idx := spatialindex.Build(live)
	pairs := idx.SelfCandidatePairs()

	acc := newAccumulator()
	for _, pr := range pairs {
		s1, s2 := live[pr.A], live[pr.B]
		result := s1.Intersection(s2, opts...)
		switch result.Type {
		case segment.IntersectionOverlap:
			acc.addOverlap(result.Overlap, opts...)
		case segment.IntersectionPoint:
			if result.Proper {
				acc.addProperCandidate(result.Point, opts...)
			} else {
				acc.addImproper(result.Point, opts...)
			}
		}
	}

	return acc.result()
}
