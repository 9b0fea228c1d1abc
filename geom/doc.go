// Package geom provides the planar primitives used by the escape-path solver:
// points, directed segments, a tagged segment-intersection result and the
// closed polygonal Boundary the walker has to leave.
//
// What is in here?
//
//   - Point, Segment  — plain value types, no identity.
//   - Intersect       — line/line solve + classification against both segments
//     (NoIntersection, InteriorIntersection, EndpointIntersection).
//   - PointAlong      — linear interpolation/extrapolation along a segment.
//   - Boundary        — ordered, closed chain of edges with validation, bounds,
//     vertex and area helpers.
//
// Numerical policy:
//
//	Parallel and collinear pairs are reported as NoIntersection; overlap is not
//	detected. Zero-length segments never intersect anything. The computed point
//	is classified against each segment's bounding box widened by a caller
//	supplied rounding tolerance; a point that lands exactly on an endpoint of
//	either segment is reported as EndpointIntersection so that callers can treat
//	grazing contacts conservatively.
//
// Interchange:
//
//	A Boundary is an ordered list of (x1, y1, x2, y2) tuples; see
//	BoundaryFromTuples and Boundary.Tuples.
//
// Complexity: every primitive is O(1); Boundary helpers are O(E) in the number
// of edges.
package geom
