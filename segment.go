package knot

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Segment represents one linear piece of a discretized rope. A segment's
// index is its position in the slice the host passes to [Detector.Advance].
type Segment struct {
	// The segment's start point.
	P0 r3.Vec
	// The segment's end point.
	P1 r3.Vec
}

// Seg returns the segment from p0 to p1.
func Seg(p0, p1 r3.Vec) Segment {
	return Segment{P0: p0, P1: p1}
}

// Segments turns a polyline of particle positions into a chain of segments,
// where segment i spans particles i and i+1.
func Segments(pts []r3.Vec) []Segment {
	if len(pts) < 2 {
		return nil
	}
	segs := make([]Segment, len(pts)-1)
	for i := range segs {
		segs[i] = Segment{P0: pts[i], P1: pts[i+1]}
	}
	return segs
}

func (s Segment) String() string {
	return fmt.Sprintf("%s→%s", formatVec(s.P0), formatVec(s.P1))
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return r3.Norm(r3.Sub(s.P1, s.P0))
}

// Center returns the midpoint of the segment's endpoints.
func (s Segment) Center() r3.Vec {
	return midpoint(s.P0, s.P1)
}

// Direction returns the unit vector pointing from P0 to P1.
// This produces a NaN vector if the endpoints coincide; use
// [Segment.UnitDirection] to guard against that.
func (s Segment) Direction() r3.Vec {
	return r3.Unit(r3.Sub(s.P1, s.P0))
}

// UnitDirection is like [Segment.Direction] but reports false instead of
// returning a NaN vector when the direction cannot be normalized.
func (s Segment) UnitDirection() (r3.Vec, bool) {
	return unit(r3.Sub(s.P1, s.P0))
}

// Normal returns the cross product of the segment's endpoints.
//
// The endpoints are taken as absolute position vectors, not relative to each
// other, so the result depends on where the segment is in space and is not a
// surface normal of the segment.
func (s Segment) Normal() r3.Vec {
	return r3.Cross(s.P0, s.P1)
}

// Eval returns the point at parameter t along the segment, with t = 0 at P0
// and t = 1 at P1.
func (s Segment) Eval(t float64) r3.Vec {
	return r3.Add(s.P0, r3.Scale(t, r3.Sub(s.P1, s.P0)))
}

func (s Segment) Translate(v r3.Vec) Segment {
	return Segment{
		P0: r3.Add(s.P0, v),
		P1: r3.Add(s.P1, v),
	}
}

func (s Segment) IsInf() bool {
	return isInf(s.P0) || isInf(s.P1)
}

func (s Segment) IsNaN() bool {
	return isNaN(s.P0) || isNaN(s.P1)
}
