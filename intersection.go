package knot

import (
	"fmt"
	"slices"
)

// Pair is an unordered pair of segment indices, normalized so that Lo <= Hi.
type Pair struct {
	Lo int
	Hi int
}

// PairOf returns the normalized pair of i and j.
func PairOf(i, j int) Pair {
	if i > j {
		i, j = j, i
	}
	return Pair{Lo: i, Hi: j}
}

// Intersection records a crossing between two segments of the rope.
//
// First and Second are in the order in which the scanner last evaluated the
// pair. Pattern matchers depend on that order, but equality between
// intersections is symmetric; see [Intersection.Key].
type Intersection struct {
	First  int
	Second int
	// Dot is the dot product of the two segments' unit directions.
	Dot float64
	// Distance is the distance between the two segments' centers.
	Distance float64
	// Sign is the orientation of the crossing: -1, 0 (undetermined), or +1.
	Sign int
}

// Key returns the symmetric key of the intersection, such that (a, b) and
// (b, a) map to the same key.
func (x Intersection) Key() Pair {
	return PairOf(x.First, x.Second)
}

func (x Intersection) String() string {
	return fmt.Sprintf("(%d, %d; sign=%+d dot=%.3g dist=%.3g)", x.First, x.Second, x.Sign, x.Dot, x.Distance)
}

// IntersectionSet is an insertion-ordered collection of intersections,
// deduplicated by [Intersection.Key]. The zero value is ready to use.
type IntersectionSet struct {
	list []Intersection
	pos  map[Pair]int
}

// Add adds x to the set. If the set already holds an intersection for the
// same pair of segments, x replaces it in place and keeps its position.
func (s *IntersectionSet) Add(x Intersection) {
	if s.pos == nil {
		s.pos = make(map[Pair]int)
	}
	k := x.Key()
	if i, ok := s.pos[k]; ok {
		s.list[i] = x
		return
	}
	s.pos[k] = len(s.list)
	s.list = append(s.list, x)
}

// Get returns the intersection recorded for the pair (i, j), in either order.
func (s *IntersectionSet) Get(i, j int) (Intersection, bool) {
	idx, ok := s.pos[PairOf(i, j)]
	if !ok {
		return Intersection{}, false
	}
	return s.list[idx], true
}

func (s *IntersectionSet) Len() int {
	return len(s.list)
}

// Slice returns the intersections in insertion order. The returned slice is a
// copy.
func (s *IntersectionSet) Slice() []Intersection {
	return slices.Clone(s.list)
}

// sequence flattens intersections into their (First, Second) indices, in
// order.
func sequence(xs []Intersection) []int {
	seq := make([]int, 0, 2*len(xs))
	for _, x := range xs {
		seq = append(seq, x.First, x.Second)
	}
	return seq
}

func count(seq []int, v int) int {
	n := 0
	for _, e := range seq {
		if e == v {
			n++
		}
	}
	return n
}
