// Package polygon provides the Polygon primitive: one outer ring plus zero
// or more hole rings, together with strict point-containment and pairwise
// intersection. Containment uses a ray-casting test that treats boundary
// points as outside rather than inside.
package polygon

import (
	"fmt"

	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/spatialindex"
)

// Polygon is a single outer ring with zero or more hole rings nested inside
// it. Rings are not recursively nested: one outer ring, zero or more inner
// rings.
type Polygon struct {
	Outer *linestring.LineString
	Holes []*linestring.LineString
}

// New returns a Polygon with the given outer ring and holes.
func New(outer *linestring.LineString, holes ...*linestring.LineString) Polygon {
	return Polygon{Outer: outer, Holes: holes}
}

// IsWellFormed reports whether the outer ring and every hole are closed
// rings with at least 4 coordinates (3 distinct vertices plus the repeated
// closing coordinate).
func (p Polygon) IsWellFormed() bool {
	if p.Outer == nil || !p.Outer.IsClosed() {
		return false
	}
	for _, h := range p.Holes {
		if h == nil || !h.IsClosed() {
			return false
		}
	}
	return true
}

// Envelope returns the polygon's axis-aligned bounding rectangle, taken
// from the outer ring (holes are always nested inside it).
func (p Polygon) Envelope() spatialindex.Envelope {
	return p.Outer.Envelope()
}

// Area2XSigned returns twice the signed area of a closed ring via the
// shoelace formula. Positive for a counter-clockwise ring, negative for
// clockwise.
func Area2XSigned(ring *linestring.LineString) float64 {
	coords := ring.Coords
	n := len(coords)
	if n < 4 {
		return 0
	}
	sum := 0.0
	// The ring's last coordinate duplicates the first; iterate the distinct
	// vertices only.
	for i := 0; i < n-1; i++ {
		a := coords[i]
		b := coords[i+1]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	return sum
}

// Area returns the polygon's area: the outer ring's unsigned area minus the
// unsigned area of every hole.
func (p Polygon) Area() float64 {
	area := absF(Area2XSigned(p.Outer)) / 2
	for _, h := range p.Holes {
		area -= absF(Area2XSigned(h)) / 2
	}
	return area
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// onRingBoundary reports whether p lies on ring's boundary.
func onRingBoundary(ring *linestring.LineString, p point.Point) bool {
	return ring.ContainsPoint(p)
}

// rayCastInside implements the even-odd ray-casting rule against a single
// ring: count crossings of a horizontal ray from p, and call it inside on an
// odd count. Boundary points are handled separately by the caller.
func rayCastInside(ring *linestring.LineString, p point.Point) bool {
	coords := ring.Coords
	inside := false
	n := len(coords) - 1 // last coordinate duplicates the first
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := coords[i]
		b := coords[j]
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) {
			xIntersect := (b.X()-a.X())*(p.Y()-a.Y())/(b.Y()-a.Y()) + a.X()
			if p.X() < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// ContainsPoint reports whether p lies strictly inside the polygon: inside
// the outer ring, outside every hole, and not on any boundary. Points
// exactly on an edge are never considered inside, per the resolved
// containment policy.
func (p Polygon) ContainsPoint(pt point.Point) bool {
	if onRingBoundary(p.Outer, pt) {
		return false
	}
	for _, h := range p.Holes {
		if onRingBoundary(h, pt) {
			return false
		}
	}
	if !rayCastInside(p.Outer, pt) {
		return false
	}
	for _, h := range p.Holes {
		if rayCastInside(h, pt) {
			return false
		}
	}
	return true
}

// ContainsPointPermissive reports the same test as ContainsPoint but treats
// boundary points as contained. Rules that need the permissive variant
// (e.g. a "must be inside or on boundary" relaxation) call this instead of
// re-deriving the ray cast.
func (p Polygon) ContainsPointPermissive(pt point.Point) bool {
	if onRingBoundary(p.Outer, pt) {
		return true
	}
	for _, h := range p.Holes {
		if onRingBoundary(h, pt) {
			return true
		}
	}
	return p.ContainsPoint(pt)
}

func (p Polygon) String() string {
	return fmt.Sprintf("Polygon{Outer: %s, Holes: %d}", p.Outer, len(p.Holes))
}
