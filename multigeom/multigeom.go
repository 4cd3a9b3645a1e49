// Package multigeom provides the tagged single/multi-part geometry union
// and the flattening helpers that convert a mixed collection into the
// homogeneous single-kind slices every rule in package rule consumes.
package multigeom

import (
	"fmt"

	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
	"github.com/go-topology/topocheck/topoerr"
)

// Kind identifies which concrete Geometry implementation a value holds.
type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Geometry is implemented by every geometry value the I/O layer can
// produce: the three singlepart kinds and their multipart counterparts.
type Geometry interface {
	Kind() Kind
}

// Point wraps a single coordinate as a Geometry.
type Point struct{ P point.Point }

func (Point) Kind() Kind { return KindPoint }

// LineString wraps a single linestring as a Geometry.
type LineString struct{ L *linestring.LineString }

func (LineString) Kind() Kind { return KindLineString }

// Polygon wraps a single polygon as a Geometry.
type Polygon struct{ P polygon.Polygon }

func (Polygon) Kind() Kind { return KindPolygon }

// MultiPoint is an ordered collection of points sharing one feature identity.
type MultiPoint struct{ Points []point.Point }

func (MultiPoint) Kind() Kind { return KindMultiPoint }

// MultiLineString is an ordered collection of linestrings sharing one
// feature identity.
type MultiLineString struct{ LineStrings []*linestring.LineString }

func (MultiLineString) Kind() Kind { return KindMultiLineString }

// MultiPolygon is an ordered collection of polygons sharing one feature
// identity.
type MultiPolygon struct{ Polygons []polygon.Polygon }

func (MultiPolygon) Kind() Kind { return KindMultiPolygon }

// IsMulti reports whether g is one of the three multipart kinds.
func IsMulti(g Geometry) bool {
	switch g.Kind() {
	case KindMultiPoint, KindMultiLineString, KindMultiPolygon:
		return true
	default:
		return false
	}
}

func unsupportedKind(g Geometry, want string) error {
	return &topoerr.InputError{
		Reason: "unsupported-kind",
		Detail: fmt.Sprintf("%s is not a %s-compatible geometry", g.Kind(), want),
	}
}

// FlattenPoints splits every Point and MultiPoint in geoms into a flat
// []point.Point; any other kind is a recoverable InputError.
func FlattenPoints(geoms []Geometry) ([]point.Point, error) {
	var out []point.Point
	for _, g := range geoms {
		switch v := g.(type) {
		case Point:
			out = append(out, v.P)
		case MultiPoint:
			out = append(out, v.Points...)
		default:
			return nil, unsupportedKind(g, "point")
		}
	}
	return out, nil
}

// FlattenLineStrings splits every LineString and MultiLineString in geoms
// into a flat []*linestring.LineString.
func FlattenLineStrings(geoms []Geometry) ([]*linestring.LineString, error) {
	var out []*linestring.LineString
	for _, g := range geoms {
		switch v := g.(type) {
		case LineString:
			out = append(out, v.L)
		case MultiLineString:
			out = append(out, v.LineStrings...)
		default:
			return nil, unsupportedKind(g, "linestring")
		}
	}
	return out, nil
}

// FlattenPolygons splits every Polygon and MultiPolygon in geoms into a
// flat []polygon.Polygon.
func FlattenPolygons(geoms []Geometry) ([]polygon.Polygon, error) {
	var out []polygon.Polygon
	for _, g := range geoms {
		switch v := g.(type) {
		case Polygon:
			out = append(out, v.P)
		case MultiPolygon:
			out = append(out, v.Polygons...)
		default:
			return nil, unsupportedKind(g, "polygon")
		}
	}
	return out, nil
}
