// Package topology provides the result value model every rule in package
// rule returns: a per-rule Valid/Errors outcome tagged by geometry kind,
// and an ordered aggregate of those results across a whole validation run.
package topology

import (
	"fmt"

	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
	"github.com/go-topology/topocheck/topoerr"
)

// Kind tags an Error with the geometry kind its offending features carry.
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

// Error is the offending-geometry bucket for a single rule/kind
// combination: one slice field per element type (points, linestrings,
// polygons), each shared by the single and multi kind, since Go has no sum
// types.
type Error struct {
	Kind        Kind
	Points      []point.Point
	LineStrings []*linestring.LineString
	Polygons    []polygon.Polygon
}

// ErrorPoint builds a Point-kind Error.
func ErrorPoint(pts []point.Point) Error { return Error{Kind: KindPoint, Points: pts} }

// ErrorLineString builds a LineString-kind Error.
func ErrorLineString(ls []*linestring.LineString) Error {
	return Error{Kind: KindLineString, LineStrings: ls}
}

// ErrorPolygon builds a Polygon-kind Error.
func ErrorPolygon(ps []polygon.Polygon) Error { return Error{Kind: KindPolygon, Polygons: ps} }

// ErrorMultiPoint builds a MultiPoint-kind Error, carrying the coordinates
// of every offending multipart point geometry.
func ErrorMultiPoint(pts []point.Point) Error { return Error{Kind: KindMultiPoint, Points: pts} }

// ErrorMultiLineString builds a MultiLineString-kind Error.
func ErrorMultiLineString(ls []*linestring.LineString) Error {
	return Error{Kind: KindMultiLineString, LineStrings: ls}
}

// ErrorMultiPolygon builds a MultiPolygon-kind Error.
func ErrorMultiPolygon(ps []polygon.Polygon) Error {
	return Error{Kind: KindMultiPolygon, Polygons: ps}
}

// Count returns the number of offending geometries this Error carries.
func (e Error) Count() int {
	switch e.Kind {
	case KindPoint, KindMultiPoint:
		return len(e.Points)
	case KindLineString, KindMultiLineString:
		return len(e.LineStrings)
	case KindPolygon, KindMultiPolygon:
		return len(e.Polygons)
	default:
		return 0
	}
}

// Result is a single rule's outcome: Valid, or a sequence of Errors (one
// per geometry kind the rule reports against).
type Result struct {
	errs []Error
}

// Valid returns the result of a rule that found no violations.
func Valid() Result { return Result{} }

// Errors returns the result of a rule that found violations, one Error
// value per geometry kind reported.
func Errors(errs ...Error) Result { return Result{errs: errs} }

// IsValid reports whether the rule found no violations.
func (r Result) IsValid() bool { return len(r.errs) == 0 }

// AllErrors returns the full error sequence. It panics if the result is
// valid; callers are expected to check IsValid first.
func (r Result) AllErrors() []Error {
	if r.IsValid() {
		panic("topology: AllErrors called on a Valid result")
	}
	return r.errs
}

// errorsOfKind returns the first Error of the given kind, or an
// InvariantError if the result is valid or carries no such kind — a
// recoverable error rather than a panic.
func (r Result) errorsOfKind(k Kind) (Error, error) {
	if r.IsValid() {
		return Error{}, &topoerr.InvariantError{Reason: fmt.Sprintf("no %s errors: result is valid", k)}
	}
	for _, e := range r.errs {
		if e.Kind == k {
			return e, nil
		}
	}
	return Error{}, &topoerr.InvariantError{Reason: fmt.Sprintf("no %s errors in this result", k)}
}

// ErrorsPoint returns the Point-kind error bucket, if present.
func (r Result) ErrorsPoint() ([]point.Point, error) {
	e, err := r.errorsOfKind(KindPoint)
	if err != nil {
		return nil, err
	}
	return e.Points, nil
}

// ErrorsLineString returns the LineString-kind error bucket, if present.
func (r Result) ErrorsLineString() ([]*linestring.LineString, error) {
	e, err := r.errorsOfKind(KindLineString)
	if err != nil {
		return nil, err
	}
	return e.LineStrings, nil
}

// ErrorsPolygon returns the Polygon-kind error bucket, if present.
func (r Result) ErrorsPolygon() ([]polygon.Polygon, error) {
	e, err := r.errorsOfKind(KindPolygon)
	if err != nil {
		return nil, err
	}
	return e.Polygons, nil
}
