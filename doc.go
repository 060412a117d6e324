// Package knot detects knots in a rope simulated as a chain of linear
// segments. It is meant to be driven by a physics simulation: once per step,
// the host hands the current segment positions to [Detector.Advance], which
// reports any knot that has formed since the previous step.
//
// # Scanning
//
// Each step, [Scan] tests pairs of segments for crossings using a skein
// relation (see [Skein]): two segments cross if their centers are closer than
// a distance threshold and they are far enough from parallel. Each crossing
// is recorded as an [Intersection] carrying the sign of the crossing, which
// tells which strand passes above the other. Segments are never tested
// against their [ExclusionRadius] nearest neighbors along the rope.
//
// Every non-adjacent pair of active segments is a candidate, so scanning is
// quadratic in the number of active segments.
//
// # Matching
//
// A [Matcher] classifies a step's intersections as a knot topology. Matchers
// are selected by [Kind] through [MatcherFor]. Only [Trefoil] is a complete
// matcher. [FigureEight] performs a consistency check but never reports a
// knot, and [Square], [Granny], and [Frictional] are placeholders.
//
// The order of intersections matters to matchers: it is the order in which
// [Scan] first evaluated each pair, not the order of segment indices.
//
// # Partitioning
//
// Once a knot is confirmed, its segments are removed from the active set so
// that it is not detected again, and the knot is stored in the detector's
// [Registry]. [Step] is the pure form of this scan-match-partition cycle;
// [Detector] wraps it with state, logging, metrics, and event delivery.
//
// # Configuration
//
// [Config] can be built in code, parsed from YAML with [ParseConfig], or
// loaded with [LoadConfig], which also honors environment overrides. The
// distance threshold is derived from the particle radius r as 2r + r/2 unless
// set explicitly. Geometry uses the vector type of
// [gonum.org/v1/gonum/spatial/r3].
package knot
