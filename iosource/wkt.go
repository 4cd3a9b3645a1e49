package iosource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/multigeom"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
)

// ParseWKT parses a single-line Well-Known-Text geometry into the matching
// multigeom.Geometry wrapper. Supports the six kinds multigeom.Kind names.
func ParseWKT(line string) (multigeom.Geometry, error) {
	tag, body, err := splitWKT(line)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "POINT":
		p, err := parseCoord(body)
		if err != nil {
			return nil, err
		}
		return multigeom.Point{P: p}, nil
	case "LINESTRING":
		l, err := parseLineStringBody(body)
		if err != nil {
			return nil, err
		}
		return multigeom.LineString{L: l}, nil
	case "POLYGON":
		p, err := parsePolygonBody(body)
		if err != nil {
			return nil, err
		}
		return multigeom.Polygon{P: p}, nil
	case "MULTIPOINT":
		coords, err := splitTopLevel(body)
		if err != nil {
			return nil, err
		}
		pts := make([]point.Point, len(coords))
		for i, c := range coords {
			pts[i], err = parseCoord(strings.Trim(c, "()"))
			if err != nil {
				return nil, err
			}
		}
		return multigeom.MultiPoint{Points: pts}, nil
	case "MULTILINESTRING":
		parts, err := splitTopLevel(body)
		if err != nil {
			return nil, err
		}
		lines := make([]*linestring.LineString, len(parts))
		for i, part := range parts {
			lines[i], err = parseLineStringBody(strings.Trim(part, "()"))
			if err != nil {
				return nil, err
			}
		}
		return multigeom.MultiLineString{LineStrings: lines}, nil
	case "MULTIPOLYGON":
		parts, err := splitTopLevel(body)
		if err != nil {
			return nil, err
		}
		polys := make([]polygon.Polygon, len(parts))
		for i, part := range parts {
			inner := strings.TrimSuffix(strings.TrimPrefix(part, "("), ")")
			polys[i], err = parsePolygonBody(inner)
			if err != nil {
				return nil, err
			}
		}
		return multigeom.MultiPolygon{Polygons: polys}, nil
	default:
		return nil, fmt.Errorf("unrecognized WKT tag %q", tag)
	}
}

func splitWKT(line string) (tag, body string, err error) {
	open := strings.IndexByte(line, '(')
	if open < 0 || !strings.HasSuffix(line, ")") {
		return "", "", fmt.Errorf("malformed WKT line %q", line)
	}
	tag = strings.ToUpper(strings.TrimSpace(line[:open]))
	body = line[open+1 : len(line)-1]
	return tag, body, nil
}

// splitTopLevel splits body on commas that are not nested inside
// parentheses, so "(1 1,2 2),(3 3,4 4)" splits into its two groups rather
// than at every comma.
func splitTopLevel(body string) ([]string, error) {
	var parts []string
	depth := 0
	start := 0
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", body)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", body)
	}
	parts = append(parts, strings.TrimSpace(body[start:]))
	return parts, nil
}

func parseCoord(s string) (point.Point, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return point.Point{}, fmt.Errorf("expected \"x y\", got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return point.Point{}, fmt.Errorf("parse x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return point.Point{}, fmt.Errorf("parse y: %w", err)
	}
	return point.New(x, y), nil
}

func parseLineStringBody(body string) (*linestring.LineString, error) {
	parts, err := splitTopLevel(body)
	if err != nil {
		return nil, err
	}
	coords := make([]point.Point, len(parts))
	for i, part := range parts {
		coords[i], err = parseCoord(part)
		if err != nil {
			return nil, err
		}
	}
	return linestring.New(coords...), nil
}

// parsePolygonBody parses the inner body of "POLYGON(...)": one or more
// parenthesized rings, the first being the outer ring and the rest holes.
func parsePolygonBody(body string) (polygon.Polygon, error) {
	rings, err := splitTopLevel(body)
	if err != nil {
		return polygon.Polygon{}, err
	}
	if len(rings) == 0 {
		return polygon.Polygon{}, fmt.Errorf("polygon with no rings")
	}
	parsed := make([]*linestring.LineString, len(rings))
	for i, r := range rings {
		inner := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(r), "("), ")")
		parsed[i], err = parseLineStringBody(inner)
		if err != nil {
			return polygon.Polygon{}, err
		}
	}
	return polygon.New(parsed[0], parsed[1:]...), nil
}

// FormatPoint renders p as WKT.
func FormatPoint(p point.Point) string {
	return fmt.Sprintf("POINT(%s)", formatCoord(p))
}

// FormatLineString renders l as WKT.
func FormatLineString(l *linestring.LineString) string {
	return fmt.Sprintf("LINESTRING(%s)", formatCoords(l.Coords))
}

// FormatPolygon renders p as WKT, outer ring first, holes following.
func FormatPolygon(p polygon.Polygon) string {
	var b strings.Builder
	b.WriteString("POLYGON((")
	b.WriteString(formatCoords(p.Outer.Coords))
	b.WriteString(")")
	for _, h := range p.Holes {
		b.WriteString(",(")
		b.WriteString(formatCoords(h.Coords))
		b.WriteString(")")
	}
	b.WriteString(")")
	return b.String()
}

func formatCoord(p point.Point) string {
	return fmt.Sprintf("%s %s", strconv.FormatFloat(p.X(), 'g', -1, 64), strconv.FormatFloat(p.Y(), 'g', -1, 64))
}

func formatCoords(coords []point.Point) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = formatCoord(c)
	}
	return strings.Join(parts, ",")
}
