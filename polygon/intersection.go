package polygon

import (
	"github.com/go-topology/topocheck/linestring"
	"github.com/go-topology/topocheck/point"
	"github.com/go-topology/topocheck/segment"
)

// Intersection computes the polygonal intersection of p and other's outer
// rings using a Weiler-Atherton-style traversal: crossing points are inserted
// into both contours, each is classified as an entry or exit with a midpoint
// containment test, then the augmented contours are walked, switching rings
// at entry points. This operates on the two flat outer rings only — holes are
// not clipped against one another, matching the simpler Outer+Holes data
// model. It reports false when the two outer rings do not overlap at all.
//
// Only transversal (point) crossings are inserted; edges that merely touch
// along a shared collinear run are not treated as intersection vertices,
// since a collinear overlap does not by itself enclose any area.
func (p Polygon) Intersection(other Polygon) (Polygon, bool) {
	a := orientCCW(p.Outer)
	b := orientCCW(other.Outer)

	augA, augB := insertCrossings(a, b)

	anyIntersection := false
	for _, v := range augA {
		if v.isIntersection {
			anyIntersection = true
			break
		}
	}

	if !anyIntersection {
		// No boundary crossings: either disjoint, or one ring wholly
		// contains the other.
		if ringInsideRing(a, b) {
			return New(linestring.New(closedRing(a)...)), true
		}
		if ringInsideRing(b, a) {
			return New(linestring.New(closedRing(b)...)), true
		}
		return Polygon{}, false
	}

	markEntries(augA, augB, b)
	markEntries(augB, augA, a)

	rings := dedupRings(traverse(augA, augB))
	if len(rings) == 0 {
		return Polygon{}, false
	}

	// The largest output ring by absolute area becomes the outer boundary;
	// any remaining rings are reported as holes of it. This keeps the
	// result within the flat Outer+Holes model even when the intersection
	// of two concave rings is itself multi-part.
	best := 0
	bestArea := 0.0
	for i, r := range rings {
		ar := absF(Area2XSigned(r))
		if ar > bestArea {
			bestArea = ar
			best = i
		}
	}
	outer := rings[best]
	var holes []*linestring.LineString
	for i, r := range rings {
		if i != best {
			holes = append(holes, r)
		}
	}
	return New(outer, holes...), true
}

type augVertex struct {
	pt            point.Point
	isIntersection bool
	entry          bool
	visited        bool
	partnerIndex   int // index into the other ring's augmented slice, -1 if not an intersection
}

// orientCCW returns the ring's distinct vertices (closing coordinate
// dropped) ordered counter-clockwise.
func orientCCW(ring *linestring.LineString) []point.Point {
	coords := ring.Coords[:len(ring.Coords)-1]
	if Area2XSigned(ring) < 0 {
		reversed := make([]point.Point, len(coords))
		for i, c := range coords {
			reversed[len(coords)-1-i] = c
		}
		return reversed
	}
	out := make([]point.Point, len(coords))
	copy(out, coords)
	return out
}

type edgeCrossing struct {
	edgeIndex int
	t         float64
	pt        point.Point
}

// insertCrossings finds every transversal crossing between ring a and ring
// b's edges and returns both rings with crossing points spliced in at the
// correct position along each edge, cross-linked via partnerIndex.
func insertCrossings(a, b []point.Point) ([]*augVertex, []*augVertex) {
	na, nb := len(a), len(b)
	crossingsA := make([][]edgeCrossing, na)
	crossingsB := make([][]edgeCrossing, nb)

	for i := 0; i < na; i++ {
		sa := segment.NewFromPoints(a[i], a[(i+1)%na])
		for j := 0; j < nb; j++ {
			sb := segment.NewFromPoints(b[j], b[(j+1)%nb])
			inter := sa.Intersection(sb)
			if inter.Type != segment.IntersectionPoint {
				continue
			}
			ta := edgeParam(sa, inter.Point)
			tb := edgeParam(sb, inter.Point)
			if ta <= 0 || ta >= 1 || tb <= 0 || tb >= 1 {
				// Shared endpoint rather than a genuine transversal
				// crossing; the ring vertex already present covers it.
				continue
			}
			crossingsA[i] = append(crossingsA[i], edgeCrossing{i, ta, inter.Point})
			crossingsB[j] = append(crossingsB[j], edgeCrossing{j, tb, inter.Point})
		}
	}

	augA, indexA := buildAugmented(a, crossingsA)
	augB, indexB := buildAugmented(b, crossingsB)

	linkPartners(augA, augB, indexA, indexB)
	return augA, augB
}

func edgeParam(s segment.Segment, pt point.Point) float64 {
	ax, ay := s.A().X(), s.A().Y()
	bx, by := s.B().X(), s.B().Y()
	dx, dy := bx-ax, by-ay
	if dx*dx+dy*dy == 0 {
		return 0
	}
	return ((pt.X()-ax)*dx + (pt.Y()-ay)*dy) / (dx*dx + dy*dy)
}

// buildAugmented splices each edge's sorted crossings between its two
// original vertices, returning the augmented ring plus the set of slice
// indices holding an inserted intersection point (for partner linking).
func buildAugmented(ring []point.Point, crossings [][]edgeCrossing) ([]*augVertex, []int) {
	var out []*augVertex
	var intersectionIdx []int
	n := len(ring)
	for i := 0; i < n; i++ {
		out = append(out, &augVertex{pt: ring[i], partnerIndex: -1})
		cs := crossings[i]
		// insertion order along the edge, from the start vertex outward
		for lo := 0; lo < len(cs); lo++ {
			for hi := lo + 1; hi < len(cs); hi++ {
				if cs[hi].t < cs[lo].t {
					cs[lo], cs[hi] = cs[hi], cs[lo]
				}
			}
		}
		for _, c := range cs {
			intersectionIdx = append(intersectionIdx, len(out))
			out = append(out, &augVertex{pt: c.pt, isIntersection: true, partnerIndex: -1})
		}
	}
	return out, intersectionIdx
}

func linkPartners(augA, augB []*augVertex, idxA, idxB []int) {
	for _, ia := range idxA {
		for _, ib := range idxB {
			if augA[ia].pt.Eq(augB[ib].pt) && augA[ia].partnerIndex == -1 && augB[ib].partnerIndex == -1 {
				augA[ia].partnerIndex = ib
				augB[ib].partnerIndex = ia
				break
			}
		}
	}
}

// markEntries classifies each intersection vertex of ring (augmented as
// augR) as an entry point into otherPts' region, via a midpoint test
// against the other ring's un-augmented vertex list — mirroring the
// teacher's midpoint-based entry/exit classification.
func markEntries(augR, augOther []*augVertex, otherPts []point.Point) {
	n := len(augR)
	for i, v := range augR {
		if !v.isIntersection {
			continue
		}
		next := augR[(i+1)%n]
		mid := point.New((v.pt.X()+next.pt.X())/2, (v.pt.Y()+next.pt.Y())/2)
		v.entry = rayCastInsidePoints(otherPts, mid)
	}
}

func rayCastInsidePoints(ring []point.Point, p point.Point) bool {
	n := len(ring)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a := ring[i]
		b := ring[j]
		if (a.Y() > p.Y()) != (b.Y() > p.Y()) {
			xIntersect := (b.X()-a.X())*(p.Y()-a.Y())/(b.Y()-a.Y()) + a.X()
			if p.X() < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// traverse walks the augmented rings, switching from one to the other at
// every entry intersection, producing one closed output ring per
// unvisited entry point until all intersections have been consumed.
func traverse(augA, augB []*augVertex) []*linestring.LineString {
	var rings []*linestring.LineString

	findUnvisitedEntry := func() (*augVertex, []*augVertex, int) {
		for i, v := range augA {
			if v.isIntersection && v.entry && !v.visited {
				return v, augA, i
			}
		}
		for i, v := range augB {
			if v.isIntersection && v.entry && !v.visited {
				return v, augB, i
			}
		}
		return nil, nil, -1
	}

	for {
		start, ring, idx := findUnvisitedEntry()
		if start == nil {
			break
		}

		var coords []point.Point
		current := ring
		i := idx
		maxSteps := 2 * (len(augA) + len(augB))
		closed := false
		// The loop rejoins the start vertex either by natural advancement
		// along its own ring, or by jumping straight onto it via a
		// partner-index switch from the other ring — so closure is
		// detected by identity of the vertex we land on, checked at the
		// top of each iteration, rather than only on the advance step.
		for step := 0; step < maxSteps; step++ {
			v := current[i]
			if step > 0 && v == start {
				coords = append(coords, v.pt)
				closed = true
				break
			}
			coords = append(coords, v.pt)
			if v.isIntersection {
				v.visited = true
			}
			i = (i + 1) % len(current)
			if current[i].isIntersection {
				partner := current[i].partnerIndex
				if partner >= 0 {
					if &current[0] == &augA[0] {
						current, i = augB, partner
					} else {
						current, i = augA, partner
					}
				}
			}
		}
		if closed {
			rings = append(rings, linestring.New(coords...))
		}
	}

	return rings
}

// ringInsideRing reports whether every vertex of inner lies inside outer,
// used for the no-crossing containment case.
func ringInsideRing(inner, outer []point.Point) bool {
	for _, p := range inner {
		if !rayCastInsidePoints(outer, p) {
			return false
		}
	}
	return true
}

// closedRing returns pts with its first coordinate repeated at the end, so
// it satisfies LineString.IsClosed.
func closedRing(pts []point.Point) []point.Point {
	out := make([]point.Point, 0, len(pts)+1)
	out = append(out, pts...)
	out = append(out, pts[0])
	return out
}

// dedupRings drops output rings that traverse produced more than once —
// the traversal can revisit the same intersection loop starting from a
// partner vertex whose own visited flag was never set directly — by
// comparing each ring's vertex set regardless of starting point or winding
// direction.
func dedupRings(rings []*linestring.LineString) []*linestring.LineString {
	var out []*linestring.LineString
	for _, r := range rings {
		duplicate := false
		for _, seen := range out {
			if sameVertexSet(r, seen) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, r)
		}
	}
	return out
}

func sameVertexSet(a, b *linestring.LineString) bool {
	av := a.Coords[:len(a.Coords)-1]
	bv := b.Coords[:len(b.Coords)-1]
	if len(av) != len(bv) {
		return false
	}
	for _, p := range av {
		found := false
		for _, q := range bv {
			if p.Eq(q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
