package knot

import "slices"

// TrefoilMaxSpan is the largest difference between the highest and lowest
// segment index that a trefoil may span.
const TrefoilMaxSpan = 8

// Rejection describes why [Trefoil.Check] rejected a set of intersections.
type Rejection int

const (
	Accepted Rejection = iota
	// Fewer than three intersections.
	RejectTooFew
	// The indices span more than TrefoilMaxSpan segments.
	RejectSpan
	// The central intersection doesn't link the extreme indices.
	RejectCentral
	// The first and last intersections don't anchor the extreme indices.
	RejectAnchors
	// The crossings form a single loop, not a trefoil.
	RejectSingleLoop
	// The extreme indices occur a different number of times.
	RejectAsymmetric
	// The crossing signs don't alternate.
	RejectSigns
)

var rejectionNames = [...]string{
	Accepted:         "accepted",
	RejectTooFew:     "too few intersections",
	RejectSpan:       "span too wide",
	RejectCentral:    "central intersection not linking extremes",
	RejectAnchors:    "first/last intersections not anchoring extremes",
	RejectSingleLoop: "single loop",
	RejectAsymmetric: "asymmetric recurrence",
	RejectSigns:      "sign pattern",
}

func (r Rejection) String() string {
	if r < 0 || int(r) >= len(rejectionNames) {
		return "unknown"
	}
	return rejectionNames[r]
}

// Trefoil matches the trefoil (overhand) knot.
type Trefoil struct{}

func (Trefoil) Kind() Kind { return KindTrefoil }

func (t Trefoil) Match(xs []Intersection) MatchResult {
	m, _ := t.Check(xs)
	return m
}

// Check matches xs against the trefoil pattern and also reports the first
// rule that rejected it.
//
// Let min and max be the lowest and highest segment index mentioned by xs.
// A trefoil needs at least three intersections, where
//   - max − min is at most [TrefoilMaxSpan],
//   - the central intersection, xs[len(xs)/2], is (max, min),
//   - the first intersection is (_, min) and the last is (max, _),
//   - it is not the case that the first is (max−1, _) and the last is
//     (_, min+1) at the same time,
//   - min and max occur equally often, and
//   - the first and last intersections have the same sign, which differs
//     from the central one's.
//
// The rules are checked in this order. A match spans the segments from
// min−1 to max+1.
func (Trefoil) Check(xs []Intersection) (MatchResult, Rejection) {
	if len(xs) < 3 {
		return MatchResult{}, RejectTooFew
	}

	seq := sequence(xs)
	lo := slices.Min(seq)
	hi := slices.Max(seq)
	if hi-lo > TrefoilMaxSpan {
		return MatchResult{}, RejectSpan
	}

	first := xs[0]
	central := xs[len(xs)/2]
	last := xs[len(xs)-1]
	if central.Second != lo || central.First != hi {
		return MatchResult{}, RejectCentral
	}
	if first.Second != lo || last.First != hi {
		return MatchResult{}, RejectAnchors
	}
	if hi-1 == first.First && lo+1 == last.Second {
		return MatchResult{}, RejectSingleLoop
	}
	if count(seq, lo) != count(seq, hi) {
		return MatchResult{}, RejectAsymmetric
	}
	if first.Sign != last.Sign || first.Sign == central.Sign {
		return MatchResult{}, RejectSigns
	}

	return MatchResult{Found: true, Begin: lo - 1, End: hi + 1}, Accepted
}
