// Package linestring provides the LineString primitive — an ordered
// sequence of at least two points — together with the iterative merge
// algorithm that consolidates linestrings joined at uniquely-touching
// endpoints.
package linestring

import (
	"fmt"
	"strings"

	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/segment"
	"github.com/go-topology/topocheck/spatialindex"
)

// LineString is an ordered sequence of at least two coordinates.
type LineString struct {
	Coords []point.Point
}

// New returns a new LineString from the given coordinates. The caller is
// responsible for ensuring at least two coordinates are provided and
// consecutive coordinates are distinct.
func New(coords ...point.Point) *LineString {
	return &LineString{Coords: coords}
}

// Start returns the first coordinate.
func (l *LineString) Start() point.Point {
	return l.Coords[0]
}

// End returns the last coordinate.
func (l *LineString) End() point.Point {
	return l.Coords[len(l.Coords)-1]
}

// IsClosed reports whether the linestring's first and last coordinates
// coincide and it has at least 4 coordinates (the minimum for a non-
// degenerate ring).
func (l *LineString) IsClosed() bool {
	return len(l.Coords) >= 4 && l.Start().Eq(l.End())
}

// Segments returns the ordered segments between consecutive coordinates.
func (l *LineString) Segments() []segment.Segment {
	segs := make([]segment.Segment, 0, len(l.Coords)-1)
	for i := 0; i+1 < len(l.Coords); i++ {
		segs = append(segs, segment.NewFromPoints(l.Coords[i], l.Coords[i+1]))
	}
	return segs
}

// Envelope returns the linestring's axis-aligned bounding rectangle.
func (l *LineString) Envelope() spatialindex.Envelope {
	env := spatialindex.Envelope{
		MinX: l.Coords[0].X(), MaxX: l.Coords[0].X(),
		MinY: l.Coords[0].Y(), MaxY: l.Coords[0].Y(),
	}
	for _, c := range l.Coords[1:] {
		env = env.Union(spatialindex.Envelope{MinX: c.X(), MaxX: c.X(), MinY: c.Y(), MaxY: c.Y()})
	}
	return env
}

// ContainsPoint reports whether p lies anywhere on the linestring.
func (l *LineString) ContainsPoint(p point.Point) bool {
	for _, s := range l.Segments() {
		if s.ContainsPoint(p) {
			return true
		}
	}
	return false
}

// Contains reports whether every coordinate of other lies on l.
func (l *LineString) Contains(other *LineString) bool {
	for _, c := range other.Coords {
		if !l.ContainsPoint(c) {
			return false
		}
	}
	return true
}

// Intersects reports whether l and other share at least one point.
func (l *LineString) Intersects(other *LineString) bool {
	for _, s1 := range l.Segments() {
		for _, s2 := range other.Segments() {
			if s1.Intersects(s2) {
				return true
			}
		}
	}
	return false
}

// Eq reports whether l and other have the same coordinates in the same
// order.
func (l *LineString) Eq(other *LineString) bool {
	if len(l.Coords) != len(other.Coords) {
		return false
	}
	for i, c := range l.Coords {
		if !c.Eq(other.Coords[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of l.
func (l *LineString) Clone() *LineString {
	coords := make([]point.Point, len(l.Coords))
	copy(coords, l.Coords)
	return &LineString{Coords: coords}
}

// Reversed returns l with its coordinate order reversed.
func (l *LineString) Reversed() *LineString {
	coords := make([]point.Point, len(l.Coords))
	for i, c := range l.Coords {
		coords[len(coords)-1-i] = c
	}
	return &LineString{Coords: coords}
}

// String returns a human-readable representation of the linestring.
func (l *LineString) String() string {
	parts := make([]string, len(l.Coords))
	for i, c := range l.Coords {
		parts[i] = c.String()
	}
	return fmt.Sprintf("LineString[%s]", strings.Join(parts, ","))
}
