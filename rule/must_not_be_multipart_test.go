package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-topology/topocheck/multigeom"
	"github.com/go-topology/topocheck/point"
)

func TestMustNotBeMultipart_DropsSingleparts(t *testing.T) {
	geoms := []multigeom.Geometry{
		multigeom.Point{P: point.New(1, 1)},
	}
	res := MustNotBeMultipart(geoms)
	assert.True(t, res.IsValid())
}

func TestMustNotBeMultipart_ReportsMultiparts(t *testing.T) {
	geoms := []multigeom.Geometry{
		multigeom.Point{P: point.New(1, 1)},
		multigeom.MultiPoint{Points: []point.Point{point.New(2, 2), point.New(3, 3)}},
	}
	res := MustNotBeMultipart(geoms)
	assert.False(t, res.IsValid())

	_, err := res.ErrorsPoint()
	assert.Error(t, err)

	all := res.AllErrors()
	assert.Len(t, all, 1)
	assert.Equal(t, 2, all[0].Count())
}
