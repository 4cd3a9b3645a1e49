// Package rule implements the topology rule catalogue: must-not-overlap,
// must-not-overlap-with, must-not-self-overlap, must-not-intersect,
// must-not-have-dangles, must-not-have-gaps, must-be-inside, and
// must-not-be-multipart. Every rule consumes an already-flattened,
// homogeneous collection (see package multigeom) and returns a
// topology.Result.
//
// The overlap, self-overlap, gap and must-be-inside rules follow the same
// candidate-pair shape: build a spatial index, enumerate candidate pairs,
// then apply a predicate per candidate. Self-pair rules dedup via
// spatialindex.Index.SelfCandidatePairs's stable-index ordering rather than
// any identity-based comparison. must-not-intersect, must-not-have-dangles
// and the linestring branch of must-not-overlap run the sweep kernel over
// all segments instead, and must-not-be-multipart inspects each geometry on
// its own.
package rule

import (
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/spatialindex"
)

// indexedPoint adapts a point.Point to spatialindex.Indexed, since Point
// itself — unlike Segment, LineString, and Polygon — has no envelope (a
// single coordinate's bounding box degenerates to itself, and none of the
// other primitives need that degenerate case spelled out).
type indexedPoint struct {
	point.Point
}

func (p indexedPoint) Envelope() spatialindex.Envelope {
	return spatialindex.Envelope{MinX: p.X(), MinY: p.Y(), MaxX: p.X(), MaxY: p.Y()}
}

func wrapPoints(pts []point.Point) []indexedPoint {
	wrapped := make([]indexedPoint, len(pts))
	for i, p := range pts {
		wrapped[i] = indexedPoint{p}
	}
	return wrapped
}

// dedupPoints returns pts with duplicates (by Point.Eq) removed,
// preserving first-seen order.
func dedupPoints(pts []point.Point) []point.Point {
	var out []point.Point
	for _, p := range pts {
		seen := false
		for _, q := range out {
			if p.Eq(q) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, p)
		}
	}
	return out
}

// containsPoint reports whether pts already holds a point equal to p.
func containsPoint(pts []point.Point, p point.Point) bool {
	for _, q := range pts {
		if p.Eq(q) {
			return true
		}
	}
	return false
}
