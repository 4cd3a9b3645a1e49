package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-topology/topocheck/polygon"
)

// TestMustNotHaveGaps_AdjacentTiles checks a pair of adjacent unit squares
// sharing a full edge: the shared boundary segment is covered by both
// rings and so is not reported, but the remaining six edges forming the
// pair's outer boundary are each covered only once and are reported —
// this rule flags any segment not doubly covered, so an uncovered dataset
// perimeter reads the same as a genuine interior gap.
func TestMustNotHaveGaps_AdjacentTiles(t *testing.T) {
	a := sq(0, 0, 1, 1)
	b := sq(1, 0, 2, 1)

	res := MustNotHaveGaps([]polygon.Polygon{a, b})
	assert.False(t, res.IsValid())

	errs, err := res.ErrorsLineString()
	assert.NoError(t, err)
	assert.Len(t, errs, 6)
}

func TestMustNotHaveGaps_Isolated(t *testing.T) {
	a := sq(0, 0, 1, 1)

	res := MustNotHaveGaps([]polygon.Polygon{a})
	assert.False(t, res.IsValid())

	errs, err := res.ErrorsLineString()
	assert.NoError(t, err)
	assert.Len(t, errs, 4)
}
