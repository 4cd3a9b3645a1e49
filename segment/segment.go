// Package segment provides the Segment primitive: a directed pair of
// [point.Point] values and the operations topology checks are built from —
// containment, distance, projection, and pairwise intersection.
//
// Segment deliberately carries no canonical endpoint ordering. The planar
// sweep in [github.com/go-topology/topocheck/sweep] imposes its own upper/
// lower ordering on endpoints internally, since that ordering is a property
// of the sweep algorithm rather than of a segment in isolation.
package segment

import (
	"fmt"
	"math"

	"github.com/go-topology/topocheck/options"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/spatialindex"
	"github.com/go-topology/topocheck/types"
)

// Segment is a straight line between two points, A and B.
type Segment struct {
	a, b point.Point
}

// New returns a new [Segment] from the four coordinates x1,y1 (A) to x2,y2 (B).
func New(x1, y1, x2, y2 float64) Segment {
	return Segment{a: point.New(x1, y1), b: point.New(x2, y2)}
}

// NewFromPoints returns a new [Segment] from the points a to b.
func NewFromPoints(a, b point.Point) Segment {
	return Segment{a: a, b: b}
}

// A returns the first endpoint of the segment.
func (s Segment) A() point.Point { return s.a }

// B returns the second endpoint of the segment.
func (s Segment) B() point.Point { return s.b }

// Points returns both endpoints of the segment.
func (s Segment) Points() (a, b point.Point) {
	return s.a, s.b
}

// String returns a human-readable representation of the segment.
func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.a, s.b)
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.a.DistanceToPoint(s.b)
}

// Center returns the midpoint of the segment.
func (s Segment) Center() point.Point {
	return point.New((s.a.X()+s.b.X())/2, (s.a.Y()+s.b.Y())/2)
}

// Envelope returns the segment's axis-aligned bounding rectangle, making
// Segment eligible for indexing by [spatialindex.Build].
func (s Segment) Envelope() spatialindex.Envelope {
	return spatialindex.Envelope{
		MinX: math.Min(s.a.X(), s.b.X()),
		MinY: math.Min(s.a.Y(), s.b.Y()),
		MaxX: math.Max(s.a.X(), s.b.X()),
		MaxY: math.Max(s.a.Y(), s.b.Y()),
	}
}

// IsDegenerate reports whether the segment's two endpoints coincide.
func (s Segment) IsDegenerate() bool {
	return s.a.Eq(s.b)
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{a: s.b, b: s.a}
}

// ProjectPoint projects p onto the infinite line carrying the segment and
// clamps the result to lie within the segment. If the segment is degenerate,
// ProjectPoint returns the segment's single point.
func (s Segment) ProjectPoint(p point.Point) point.Point {
	vecAB := s.b.Sub(s.a)
	vecAP := p.Sub(s.a)

	abDotAB := vecAB.DotProduct(vecAB)
	if abDotAB == 0 {
		return s.a
	}

	apDotAB := vecAP.DotProduct(vecAB)
	t := math.Max(0, math.Min(1, apDotAB/abDotAB))
	return s.a.Add(vecAB.Scale(point.Origin(), t))
}

// DistanceToPoint returns the shortest distance from p to the segment.
func (s Segment) DistanceToPoint(p point.Point) float64 {
	return s.ProjectPoint(p).DistanceToPoint(p)
}

// ContainsPoint reports whether p lies on the segment, within epsilon.
//
// Use [options.WithEpsilon] to widen the tolerance used in the distance
// comparison; the default tolerance is zero (exact).
func (s Segment) ContainsPoint(p point.Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return s.DistanceToPoint(p) <= geoOpts.Epsilon
}

// RelationshipToPoint returns the spatial relationship between p and the
// segment: [types.RelationshipIntersection] if p lies on the segment,
// [types.RelationshipDisjoint] otherwise.
func (s Segment) RelationshipToPoint(p point.Point) types.Relationship {
	if s.DistanceToPoint(p) == 0 {
		return types.RelationshipIntersection
	}
	return types.RelationshipDisjoint
}

// Contains reports whether other is a sub-segment of s: both of other's
// endpoints lie on s, within epsilon.
func (s Segment) Contains(other Segment, opts ...options.GeometryOptionsFunc) bool {
	return s.ContainsPoint(other.a, opts...) && s.ContainsPoint(other.b, opts...)
}

// Eq reports whether two segments have the same endpoints in the same order,
// within epsilon.
func (s Segment) Eq(other Segment, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return numericEq(s.a, other.a, geoOpts.Epsilon) && numericEq(s.b, other.b, geoOpts.Epsilon)
}

func numericEq(p, q point.Point, epsilon float64) bool {
	return math.Abs(p.X()-q.X()) <= epsilon && math.Abs(p.Y()-q.Y()) <= epsilon
}

// EqUnordered reports whether two segments have the same endpoints, ignoring
// direction, within epsilon.
func (s Segment) EqUnordered(other Segment, opts ...options.GeometryOptionsFunc) bool {
	return s.Eq(other, opts...) || s.Eq(other.Reversed(), opts...)
}
