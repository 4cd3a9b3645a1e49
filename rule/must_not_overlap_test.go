package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/polygon"
)

func sq(x0, y0, x1, y1 float64) polygon.Polygon {
	return polygon.New(linestring.New(
		point.New(x0, y0), point.New(x1, y0), point.New(x1, y1), point.New(x0, y1), point.New(x0, y0),
	))
}

// TestMustNotOverlapPolygons_NestedSquare covers a unit square and a
// smaller square offset inside it, reporting their overlap region.
func TestMustNotOverlapPolygons_NestedSquare(t *testing.T) {
	a := sq(0, 0, 1, 1)
	b := sq(0.25, 0.25, 0.75, 0.75)

	res := MustNotOverlapPolygons([]polygon.Polygon{a, b})
	assert.False(t, res.IsValid())

	errs, err := res.ErrorsPolygon()
	assert.NoError(t, err)
	assert.Len(t, errs, 1)
	assert.InDelta(t, 0.25, errs[0].Area(), 1e-9)
}

func TestMustNotOverlapPolygons_Disjoint(t *testing.T) {
	a := sq(0, 0, 1, 1)
	b := sq(5, 5, 6, 6)
	res := MustNotOverlapPolygons([]polygon.Polygon{a, b})
	assert.True(t, res.IsValid())
}

// TestMustNotOverlapPoints_DuplicateCoordinate covers a pair of points at
// identical coordinates reported as overlapping, alongside a disjoint
// third point that is not.
func TestMustNotOverlapPoints_DuplicateCoordinate(t *testing.T) {
	pts := []point.Point{
		point.New(181.2, 51.79),
		point.New(181.2, 51.79),
		point.New(184.0, 53.0),
	}
	res := MustNotOverlapPoints(pts)
	assert.False(t, res.IsValid())

	errs, err := res.ErrorsPoint()
	assert.NoError(t, err)
	assert.Len(t, errs, 1)
	assert.True(t, errs[0].Eq(point.New(181.2, 51.79)))
}

func TestMustNotOverlapLineStrings(t *testing.T) {
	a := linestring.New(point.New(1, 1), point.New(4, 4))
	b := linestring.New(point.New(4, 4), point.New(2, 2))

	res := MustNotOverlapLineStrings([]*linestring.LineString{a, b})
	assert.False(t, res.IsValid())

	errs, err := res.ErrorsLineString()
	assert.NoError(t, err)
	assert.Len(t, errs, 1)
}

func TestMustNotOverlapLineStrings_Valid(t *testing.T) {
	a := linestring.New(point.New(0, 0), point.New(1, 0))
	b := linestring.New(point.New(5, 5), point.New(6, 5))
	res := MustNotOverlapLineStrings([]*linestring.LineString{a, b})
	assert.True(t, res.IsValid())
}
