// Package spatialindex provides a bulk-loaded bounding-volume index over
// axis-aligned envelopes, used throughout the topocheck packages to prune
// pairwise candidate enumeration from O(n*m) down to near-linear on
// realistic inputs.
//
// It wraps github.com/peterstace/simplefeatures/rtree, a bulk-load-oriented
// R-tree well suited to the "build once from a fixed item set, then issue
// many envelope queries" access pattern every rule in this module needs.
package spatialindex

import (
	"github.com/peterstace/simplefeatures/rtree"
)

// Envelope is an axis-aligned bounding rectangle.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Union returns the smallest Envelope containing both e and other.
func (e Envelope) Union(other Envelope) Envelope {
	return Envelope{
		MinX: min(e.MinX, other.MinX),
		MinY: min(e.MinY, other.MinY),
		MaxX: max(e.MaxX, other.MaxX),
		MaxY: max(e.MaxY, other.MaxY),
	}
}

// Intersects reports whether e and other share any area or boundary.
func (e Envelope) Intersects(other Envelope) bool {
	return e.MinX <= other.MaxX && e.MaxX >= other.MinX &&
		e.MinY <= other.MaxY && e.MaxY >= other.MinY
}

func (e Envelope) box() rtree.Box {
	return rtree.Box{MinX: e.MinX, MinY: e.MinY, MaxX: e.MaxX, MaxY: e.MaxY}
}

// Indexed is anything that can report its bounding envelope, making it
// eligible for indexing.
type Indexed interface {
	Envelope() Envelope
}

// Index is a bulk-loaded, read-only spatial index over a fixed set of items,
// identified by their position (record ID) in the slice passed to Build.
type Index struct {
	tree  *rtree.RTree
	bboxs []Envelope
}

// Build indexes the envelopes of items. The index is immutable after
// construction; items must not be reordered by the caller afterward, since
// record IDs returned by queries are positions into the original slice.
func Build[T Indexed](items []T) *Index {
	bboxs := make([]Envelope, len(items))
	bulk := make([]rtree.BulkItem, len(items))
	for i, item := range items {
		env := item.Envelope()
		bboxs[i] = env
		bulk[i] = rtree.BulkItem{Box: env.box(), RecordID: i}
	}
	return &Index{
		tree:  rtree.BulkLoad(bulk),
		bboxs: bboxs,
	}
}

// LocateInEnvelope returns the record IDs of every indexed item whose
// envelope intersects env.
func (idx *Index) LocateInEnvelope(env Envelope) []int {
	var hits []int
	idx.tree.RangeSearch(env.box(), func(recordID int) error {
		hits = append(hits, recordID)
		return nil
	})
	return hits
}

// Pair is a candidate pair of record IDs whose envelopes intersect.
type Pair struct {
	A, B int
}

// SelfCandidatePairs returns every unordered pair of distinct record IDs (a <
// b) in idx whose envelopes intersect. Each qualifying pair is reported
// exactly once.
func (idx *Index) SelfCandidatePairs() []Pair {
	var pairs []Pair
	for i, env := range idx.bboxs {
		idx.tree.RangeSearch(env.box(), func(j int) error {
			if j > i {
				pairs = append(pairs, Pair{A: i, B: j})
			}
			return nil
		})
	}
	return pairs
}

// CandidatePairs returns every pair (a, b) with a a record ID in idx and b a
// record ID in other, such that their envelopes intersect. Every qualifying
// combination is reported exactly once; self-vs-self pairs within idx are
// not considered, since a and b are drawn from two distinct indexes.
func (idx *Index) CandidatePairs(other *Index) []Pair {
	var pairs []Pair
	for i, env := range idx.bboxs {
		other.tree.RangeSearch(env.box(), func(j int) error {
			pairs = append(pairs, Pair{A: i, B: j})
			return nil
		})
	}
	return pairs
}
