package knot

import "fmt"

// MatchResult is the outcome of matching a step's intersections against a
// knot pattern. The zero value means no match.
type MatchResult struct {
	Found bool
	// Begin and End delimit, inclusively, the range of segment indices the
	// knot occupies. They are only meaningful if Found is true.
	Begin int
	End   int
}

func (m MatchResult) String() string {
	if !m.Found {
		return "no match"
	}
	return fmt.Sprintf("knot [%d, %d]", m.Begin, m.End)
}

// Matcher recognizes one knot topology in the intersections produced by
// [Scan].
//
// Implementations must not retain xs or keep state between calls.
type Matcher interface {
	Kind() Kind
	Match(xs []Intersection) MatchResult
}

var (
	_ Matcher = Trefoil{}
	_ Matcher = FigureEight{}
	_ Matcher = Square{}
	_ Matcher = Granny{}
	_ Matcher = Frictional{}
)

var matchers = map[Kind]Matcher{
	KindTrefoil:     Trefoil{},
	KindFigureEight: FigureEight{},
	KindSquare:      Square{},
	KindGranny:      Granny{},
	KindFrictional:  Frictional{},
}

// MatcherFor returns the matcher for the knot type k.
func MatcherFor(k Kind) (Matcher, error) {
	m, ok := matchers[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	return m, nil
}

// The square, granny, and frictional knots are made of nested trefoil-like
// crossing sequences. Their matchers are placeholders that never match.

type Square struct{}

func (Square) Kind() Kind                       { return KindSquare }
func (Square) Match([]Intersection) MatchResult { return MatchResult{} }

type Granny struct{}

func (Granny) Kind() Kind                       { return KindGranny }
func (Granny) Match([]Intersection) MatchResult { return MatchResult{} }

type Frictional struct{}

func (Frictional) Kind() Kind                       { return KindFrictional }
func (Frictional) Match([]Intersection) MatchResult { return MatchResult{} }
