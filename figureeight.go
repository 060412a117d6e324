package knot

import "slices"

// FigureEight is an incomplete matcher for the figure-eight knot. It never
// reports a match; [FigureEight.Consistent] exposes the partial check it
// does have.
type FigureEight struct{}

func (FigureEight) Kind() Kind { return KindFigureEight }

func (FigureEight) Match([]Intersection) MatchResult { return MatchResult{} }

// Consistent reports whether xs passes the figure-eight consistency check:
// there are at least four intersections, and the index halfway between the
// lowest and highest index occurs at least twice but fewer times than there
// are intersections.
func (FigureEight) Consistent(xs []Intersection) bool {
	if len(xs) < 4 {
		return false
	}
	seq := sequence(xs)
	mid := (slices.Min(seq) + slices.Max(seq)) / 2
	n := count(seq, mid)
	return n >= 2 && n < len(xs)
}
