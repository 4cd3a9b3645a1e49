package segment

import (
	"math"

	"github.com/go-topology/topocheck/numeric"
	"github.com/go-topology/topocheck/options"
	"github.com/go-topology/topocheck/point"
)

// IntersectionType classifies the result of [Segment.Intersection].
type IntersectionType uint8

const (
	// IntersectionNone indicates the segments do not intersect.
	IntersectionNone IntersectionType = iota

	// IntersectionPoint indicates the segments cross or touch at a single point.
	IntersectionPoint

	// IntersectionOverlap indicates the segments are collinear and overlap
	// along a sub-segment.
	IntersectionOverlap
)

// Intersection describes how two segments relate to each other.
type Intersection struct {
	Type IntersectionType

	// Point holds the crossing point when Type is IntersectionPoint.
	Point point.Point

	// Overlap holds the shared sub-segment when Type is IntersectionOverlap.
	Overlap Segment

	// Proper is true when the intersection is a single point that lies in
	// the interior of both segments (i.e. at neither segment's endpoint).
	// It is always false for IntersectionNone and IntersectionOverlap.
	Proper bool
}

// Intersects reports whether s and other share at least one point, using an
// orientation-based straddle test. It is cheaper than [Segment.Intersection]
// when only a boolean answer is needed.
func (s Segment) Intersects(other Segment) bool {
	o1 := point.Orientation(s.a, s.b, other.a)
	o2 := point.Orientation(s.a, s.b, other.b)
	o3 := point.Orientation(other.a, other.b, s.a)
	o4 := point.Orientation(other.a, other.b, s.b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear special cases: one segment's endpoint lies on the other.
	if o1 == point.Collinear && s.onBoundingBox(other.a) {
		return true
	}
	if o2 == point.Collinear && s.onBoundingBox(other.b) {
		return true
	}
	if o3 == point.Collinear && other.onBoundingBox(s.a) {
		return true
	}
	if o4 == point.Collinear && other.onBoundingBox(s.b) {
		return true
	}
	return false
}

// onBoundingBox reports whether p lies within the axis-aligned bounding box
// of the segment. It assumes p is already known to be collinear with s.
func (s Segment) onBoundingBox(p point.Point) bool {
	minX, maxX := math.Min(s.a.X(), s.b.X()), math.Max(s.a.X(), s.b.X())
	minY, maxY := math.Min(s.a.Y(), s.b.Y()), math.Max(s.a.Y(), s.b.Y())
	return p.X() >= minX && p.X() <= maxX && p.Y() >= minY && p.Y() <= maxY
}

// Intersection calculates the intersection between s and other, handling
// both the transversal (single point) and collinear-overlap cases.
//
// Use [options.WithEpsilon] to snap near-integer intersection coordinates
// to clean values; the default is no snapping.
func (s Segment) Intersection(other Segment, opts ...options.GeometryOptionsFunc) Intersection {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)

	A, B := s.a, s.b
	C, D := other.a, other.b

	dir1 := B.Sub(A)
	dir2 := D.Sub(C)

	denominator := dir1.CrossProduct(dir2)

	if denominator == 0 {
		// Parallel. Collinear if C lies on the infinite line through A,B.
		AC := C.Sub(A)
		if AC.CrossProduct(dir1) != 0 {
			return Intersection{Type: IntersectionNone}
		}

		abDotAB := dir1.DotProduct(dir1)
		if abDotAB == 0 {
			// Degenerate segment s; treat as a point containment check.
			if s.ContainsPoint(A) && other.ContainsPoint(A) {
				return Intersection{Type: IntersectionPoint, Point: A}
			}
			return Intersection{Type: IntersectionNone}
		}

		tStart := C.Sub(A).DotProduct(dir1) / abDotAB
		tEnd := D.Sub(A).DotProduct(dir1) / abDotAB
		if tStart > tEnd {
			tStart, tEnd = tEnd, tStart
		}

		overlapStart := math.Max(0, tStart)
		overlapEnd := math.Min(1, tEnd)
		if overlapStart > overlapEnd {
			return Intersection{Type: IntersectionNone}
		}

		start := point.New(
			numeric.SnapToEpsilon(A.X()+overlapStart*dir1.X(), geoOpts.Epsilon),
			numeric.SnapToEpsilon(A.Y()+overlapStart*dir1.Y(), geoOpts.Epsilon),
		)
		end := point.New(
			numeric.SnapToEpsilon(A.X()+overlapEnd*dir1.X(), geoOpts.Epsilon),
			numeric.SnapToEpsilon(A.Y()+overlapEnd*dir1.Y(), geoOpts.Epsilon),
		)

		if start.Eq(end) {
			return Intersection{Type: IntersectionPoint, Point: start}
		}
		return Intersection{Type: IntersectionOverlap, Overlap: NewFromPoints(start, end)}
	}

	AC := C.Sub(A)
	t := AC.CrossProduct(dir2) / denominator
	u := AC.CrossProduct(dir1) / denominator

	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersection{Type: IntersectionNone}
	}

	p := point.New(
		numeric.SnapToEpsilon(A.X()+t*dir1.X(), geoOpts.Epsilon),
		numeric.SnapToEpsilon(A.Y()+t*dir1.Y(), geoOpts.Epsilon),
	)

	proper := t > 0 && t < 1 && u > 0 && u < 1
	return Intersection{Type: IntersectionPoint, Point: p, Proper: proper}
}
