package linestring

import "github.com/go-topology/topocheck/point"

// Merge consolidates lines by repeatedly joining linestrings at endpoints
// touched by exactly one other present linestring. The working set is
// modeled as an indexed slice of optional linestrings (nil = removed slot),
// and passes repeat until the live-slot count stabilizes.
//
// Merge takes ownership of lines; callers should not use the input slice's
// pointers afterward.
func Merge(lines []*LineString) []*LineString {
	work := make([]*LineString, len(lines))
	copy(work, lines)

	liveCount := -1
	for {
		for i := range work {
			ls := work[i]
			if ls == nil {
				continue
			}
			work[i] = nil
			merged, toRemove := computeLineString(work, ls)
			if merged != nil {
				work[i] = merged
				for _, idx := range toRemove {
					work[idx] = nil
				}
			} else {
				work[i] = ls
			}
		}

		newCount := 0
		for _, ls := range work {
			if ls != nil {
				newCount++
			}
		}
		if newCount == liveCount {
			break
		}
		liveCount = newCount
	}

	result := make([]*LineString, 0, liveCount)
	for _, ls := range work {
		if ls != nil {
			result = append(result, ls)
		}
	}
	return result
}

// intersectedLineStrings returns the indices and pointers of every present,
// distinct-from-ls entry in work that shares a point with ls.
func intersectedLineStrings(work []*LineString, ls *LineString) (indices []int, lines []*LineString) {
	for i, other := range work {
		if other == nil || other == ls {
			continue
		}
		if other.Intersects(ls) {
			indices = append(indices, i)
			lines = append(lines, other)
		}
	}
	return indices, lines
}

// computeLineString attempts to grow ls by merging it with every other
// linestring in work that uniquely touches one of its endpoints, returning
// the resulting linestring (nil if ls was not extended) and the indices in
// work that were consumed and should be cleared.
func computeLineString(work []*LineString, ls *LineString) (*LineString, []int) {
	indices, others := intersectedLineStrings(work, ls)

	startCount, endCount := 0, 0
	for _, other := range others {
		if other.ContainsPoint(ls.Start()) {
			startCount++
		}
		if other.ContainsPoint(ls.End()) {
			endCount++
		}
	}

	var result *LineString
	var toRemove []int

	for k, other := range others {
		idx := indices[k]
		touchesStart := startCount == 1 && other.ContainsPoint(ls.Start())
		touchesEnd := endCount == 1 && other.ContainsPoint(ls.End())
		if !touchesStart && !touchesEnd {
			continue
		}

		if result == nil {
			if merged, ok := mergeTwo(ls, other); ok {
				result = merged
				toRemove = append(toRemove, idx)
			} else {
				result = ls.Clone()
			}
		} else {
			if merged, ok := mergeTwo(result, other); ok {
				result = merged
				toRemove = append(toRemove, idx)
			}
		}

		if result != nil && result.IsClosed() {
			if coord, found := findRotateCoord(work, result, other); found {
				result = rotateStartPoint(result, coord)
			}
		}
	}

	return result, toRemove
}

// mergeTwo joins a and b at whichever pair of endpoints coincide, dropping
// the duplicate shared coordinate. It reports false if no endpoint of a
// touches an endpoint of b.
func mergeTwo(a, b *LineString) (*LineString, bool) {
	switch {
	case a.Start().Eq(b.Start()):
		return concat(a.Reversed(), b, 1), true
	case a.End().Eq(b.Start()):
		return concat(a, b, 1), true
	case a.End().Eq(b.End()):
		return concat(a, b.Reversed(), 1), true
	case a.Start().Eq(b.End()):
		return concat(b, a, 1), true
	default:
		return nil, false
	}
}

func concat(a, b *LineString, skip int) *LineString {
	coords := make([]point.Point, 0, len(a.Coords)+len(b.Coords)-skip)
	coords = append(coords, a.Coords...)
	coords = append(coords, b.Coords[skip:]...)
	return &LineString{Coords: coords}
}

// findRotateCoord looks for another present linestring (not fully contained
// in result, and not the one just consumed) whose endpoint lies on the
// newly-closed ring result, so the ring's start can be rotated to match it.
func findRotateCoord(work []*LineString, result, justConsumed *LineString) (point.Point, bool) {
	for _, other := range work {
		if other == nil || other == justConsumed {
			continue
		}
		if result.Contains(other) {
			continue
		}
		if result.ContainsPoint(other.Start()) {
			return other.Start(), true
		}
		if result.ContainsPoint(other.End()) {
			return other.End(), true
		}
	}
	return point.Point{}, false
}

// rotateStartPoint changes the start/end coordinate of a closed ring to at,
// preserving traversal order and ring length.
func rotateStartPoint(ring *LineString, at point.Point) *LineString {
	n := len(ring.Coords)
	for i := 0; i < n-1; i++ {
		if ring.Coords[i].Eq(at) {
			coords := make([]point.Point, 0, n)
			coords = append(coords, ring.Coords[i:n-1]...)
			coords = append(coords, ring.Coords[:i+1]...)
			return &LineString{Coords: coords}
		}
	}
	return ring
}
