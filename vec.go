package knot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

func formatVec(v r3.Vec) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func midpoint(a, b r3.Vec) r3.Vec {
	return r3.Vec{
		X: 0.5 * (a.X + b.X),
		Y: 0.5 * (a.Y + b.Y),
		Z: 0.5 * (a.Z + b.Z),
	}
}

// isInf reports whether at least one of x, y, and z is infinite.
func isInf(v r3.Vec) bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// isNaN reports whether at least one of x, y, and z is NaN.
func isNaN(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// unit returns the unit vector colinear to v. Unlike [r3.Unit], it reports
// false instead of returning a NaN vector when v has zero, infinite, or NaN
// magnitude.
func unit(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n == 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

// sign returns -1, 0, or +1 depending on the sign of d. Values within tol of
// zero map to 0.
func sign(d, tol float64) int {
	switch {
	case d > tol:
		return 1
	case d < -tol:
		return -1
	default:
		return 0
	}
}
