package knot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var (
	axisX = Pt(1, 0, 0)
	axisY = Pt(0, 1, 0)
	axisZ = Pt(0, 0, 1)
)

// segAt returns a short segment centered on c and pointing along dir.
func segAt(c, dir r3.Vec) Segment {
	h := r3.Scale(0.1, dir)
	return Seg(r3.Sub(c, h), r3.Add(c, h))
}

// trefoilRope returns eleven segments whose only crossings, with a distance
// threshold of 1, are (0, 3), (0, 7), and (4, 7), with signs +1, -1, and +1.
// Scanning them yields [(3, 0), (7, 0), (7, 4)], a trefoil spanning segments
// 0 through 7.
func trefoilRope() []Segment {
	segs := make([]Segment, 11)
	for i := range segs {
		segs[i] = segAt(Pt(100+10*float64(i), 0, 0), axisX)
	}
	segs[0] = segAt(Pt(0, 0, 0), axisX)
	segs[3] = segAt(Pt(0.6, -0.3, 0), axisZ)
	segs[4] = segAt(Pt(-1.2, 0.6, 0), axisX)
	segs[7] = segAt(Pt(-0.6, 0.3, 0), axisZ)
	return segs
}

func testParams() ScanParams {
	cfg := DefaultConfig()
	cfg.DistanceThreshold = 1
	return cfg.Params()
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// xsOf builds intersections from (first, second, sign) triples.
func xsOf(triples ...[3]int) []Intersection {
	out := make([]Intersection, len(triples))
	for i, tr := range triples {
		out[i] = Intersection{First: tr[0], Second: tr[1], Sign: tr[2]}
	}
	return out
}
