// Package topocheck validates vector geometry against a configurable set of
// topology rules: overlap, intersection, dangle, gap, containment, and
// multipart checks applied to points, line strings, and polygons read from a
// dataset.
//
// # Sub-packages
//
// The geometric primitives live in [point] and [segment], with [linestring]
// and [polygon] building on top of them. [multigeom] wraps collections of
// each. The planar sweep used for intersection and overlap detection lives in
// [sweep], backed by a bulk-loaded R-tree in [spatialindex] for candidate
// pruning. Rule evaluation lives in [rule], with results reported through the
// value types in [topology] and errors in [topoerr]. [iosource] provides the
// dataset reader/writer used by the [cmd/topocheck] CLI.
//
// # Epsilon
//
// Most coordinate comparisons across these packages are not exact; they
// tolerate a small amount of floating-point error. The tolerance is a single
// package-level value, read with [GetEpsilon] and changed with [SetEpsilon].
// The default is 1e-9, suitable for coordinates in a roughly -1e6..1e6 range;
// callers working with very large or very small coordinate magnitudes should
// adjust it accordingly.
package topocheck

import (
	"math"
	"sync/atomic"
)

// defaultEpsilon is used until SetEpsilon is called.
const defaultEpsilon = 1e-9

var epsilonBits atomic.Uint64

func init() {
	epsilonBits.Store(math.Float64bits(defaultEpsilon))
	logDebugf("debug logging enabled, default epsilon=%v", defaultEpsilon)
}

// GetEpsilon returns the epsilon tolerance currently used by floating-point
// comparisons throughout this module.
func GetEpsilon() float64 {
	return math.Float64frombits(epsilonBits.Load())
}

// SetEpsilon sets the epsilon tolerance used by floating-point comparisons
// throughout this module. It is safe to call concurrently with geometry
// operations, though changing it mid-computation can change the outcome of
// comparisons that straddle the old and new tolerance.
func SetEpsilon(epsilon float64) {
	epsilonBits.Store(math.Float64bits(epsilon))
}
