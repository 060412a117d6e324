package knot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ExclusionRadius is the number of neighbors, in each direction along the
// active set, that a segment is never tested against.
const ExclusionRadius = 2

// parallelEpsilon is how close |dot| has to be to 1 for two segments to be
// considered colinear regardless of the configured angle offset.
const parallelEpsilon = 1e-6

// ScanParams are the per-step invariant parameters of the skein test. Use
// [Config.Params] to derive them from a configuration.
type ScanParams struct {
	// DistanceThreshold is the exclusive upper bound on the distance between
	// two segments' centers.
	DistanceThreshold float64
	// MaxAbsDot is cos(90° − angle offset). Pairs whose |dot| reaches it are
	// too close to parallel to count as crossing.
	MaxAbsDot float64
	// SignTolerance is the magnitude below which a coordinate difference
	// doesn't discriminate the crossing's orientation.
	SignTolerance float64
}

// Crossing is the result of an accepted skein test.
type Crossing struct {
	Dot      float64
	Distance float64
	Sign     int
}

// Skein applies the skein-relation test to the segments a and b and reports
// whether they should be treated as crossing.
//
// The test rejects pairs whose centers are at least p.DistanceThreshold apart,
// pairs with a degenerate direction, and pairs that are nearly colinear. The
// sign of an accepted crossing is the sign of a's center minus b's center,
// compared on the Y axis first, then Z, then X, skipping axes whose difference
// is within p.SignTolerance of zero. Swapping a and b negates the sign and
// leaves everything else unchanged.
func Skein(a, b Segment, p ScanParams) (Crossing, bool) {
	ca := a.Center()
	cb := b.Center()
	d := r3.Sub(ca, cb)
	dist := r3.Norm(d)
	// NaN distances fail this comparison too.
	if !(dist < p.DistanceThreshold) {
		return Crossing{}, false
	}

	da, ok := a.UnitDirection()
	if !ok {
		return Crossing{}, false
	}
	db, ok := b.UnitDirection()
	if !ok {
		return Crossing{}, false
	}
	dot := r3.Dot(da, db)
	absDot := math.Abs(dot)
	if math.Abs(absDot-1) <= parallelEpsilon || absDot >= p.MaxAbsDot {
		return Crossing{}, false
	}

	return Crossing{
		Dot:      dot,
		Distance: dist,
		Sign:     axisSign(d, p.SignTolerance),
	}, true
}

// axisSign returns the sign of d on the first axis, in the order Y, Z, X,
// whose magnitude exceeds tol.
func axisSign(d r3.Vec, tol float64) int {
	for _, v := range [3]float64{d.Y, d.Z, d.X} {
		if s := sign(v, tol); s != 0 {
			return s
		}
	}
	return 0
}

func finite(s Segment) bool {
	return !s.IsNaN() && !s.IsInf()
}

// testPair runs the skein test on segments i and j. The geometry is always
// evaluated with the lower index first, so that testing (i, j) and (j, i)
// yields the same crossing. The returned intersection keeps the (i, j)
// orientation.
func testPair(segs []Segment, i, j int, p ScanParams) (Intersection, bool) {
	if i < 0 || j < 0 || i >= len(segs) || j >= len(segs) {
		return Intersection{}, false
	}
	if !finite(segs[i]) || !finite(segs[j]) {
		return Intersection{}, false
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	c, ok := Skein(segs[lo], segs[hi], p)
	if !ok {
		return Intersection{}, false
	}
	return Intersection{
		First:    i,
		Second:   j,
		Dot:      c.Dot,
		Distance: c.Distance,
		Sign:     c.Sign,
	}, true
}

// Scan finds all crossings between segments of the active set.
//
// active lists the indices into segs that are still eligible, in rope order.
// Every segment that has a partner more than [ExclusionRadius] positions
// ahead of it is tested against all segments more than ExclusionRadius
// positions behind it, then against all segments more than ExclusionRadius
// positions ahead of it. Because each pair is visited from both ends, a pair's
// position in the result is fixed by its first evaluation while its
// orientation comes from its last.
//
// The result is in evaluation order, not sorted by index. Indices outside
// segs and segments with NaN or infinite endpoints are ignored. The cost is quadratic in len(active).
func Scan(active []int, segs []Segment, p ScanParams) []Intersection {
	var set IntersectionSet
	scanInto(&set, active, segs, p)
	return set.Slice()
}

func scanInto(set *IntersectionSet, active []int, segs []Segment, p ScanParams) {
	n := len(active)
	for i := 0; i < n-(ExclusionRadius+1); i++ {
		for j := 0; j < i-ExclusionRadius; j++ {
			if x, ok := testPair(segs, active[i], active[j], p); ok {
				set.Add(x)
			}
		}
		for j := i + ExclusionRadius + 1; j < n; j++ {
			if x, ok := testPair(segs, active[i], active[j], p); ok {
				set.Add(x)
			}
		}
	}
}
