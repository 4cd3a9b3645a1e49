package rule

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/multigeom"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
	"github.com/go-topology/topocheck/topology"
)

// MustNotBeMultipart classifies each input geometry; multipart geometries
// (MultiPoint, MultiLineString, MultiPolygon) are reported into their
// matching kind's error bucket, singleparts are dropped. Valid iff no
// multiparts were seen.
func MustNotBeMultipart(geoms []multigeom.Geometry) topology.Result {
	var errs []topology.Error
	var multiPoints []multigeom.MultiPoint
	var multiLineStrings []multigeom.MultiLineString
	var multiPolygons []multigeom.MultiPolygon

	for _, g := range geoms {
		switch v := g.(type) {
		case multigeom.MultiPoint:
			multiPoints = append(multiPoints, v)
		case multigeom.MultiLineString:
			multiLineStrings = append(multiLineStrings, v)
		case multigeom.MultiPolygon:
			multiPolygons = append(multiPolygons, v)
		}
	}

	if len(multiPoints) > 0 {
		var pts []point.Point
		for _, mp := range multiPoints {
			pts = append(pts, mp.Points...)
		}
		errs = append(errs, topology.ErrorMultiPoint(pts))
	}
	if len(multiLineStrings) > 0 {
		var ls []*linestring.LineString
		for _, ml := range multiLineStrings {
			ls = append(ls, ml.LineStrings...)
		}
		errs = append(errs, topology.ErrorMultiLineString(ls))
	}
	if len(multiPolygons) > 0 {
		var ps []polygon.Polygon
		for _, mp := range multiPolygons {
			ps = append(ps, mp.Polygons...)
		}
		errs = append(errs, topology.ErrorMultiPolygon(ps))
	}

	if len(errs) == 0 {
		return topology.Valid()
	}
	return topology.Errors(errs...)
}
