package geom

import "math"

// Intersect computes where the infinite lines through a and b meet and
// classifies that point against both segments.
//
// Steps:
//  1. det = cross of the two direction vectors. If |det| is zero relative to
//     |a|·|b| the pair is parallel, collinear or degenerate ⇒ NoIntersection.
//  2. Solve for (x, y) with Cramer's rule. The formula is antisymmetric in
//     (a, b) in both numerator and denominator, so Intersect(a, b) and
//     Intersect(b, a) produce bit-identical points.
//  3. If (x, y) equals an endpoint of a or b exactly ⇒ EndpointIntersection,
//     even when it lies outside the other segment's box.
//  4. If (x, y) lies outside either bounding box widened by eps ⇒ NoIntersection.
//  5. Otherwise ⇒ InteriorIntersection.
//
// Step 3 makes a line that merely points at a vertex report Endpoint; the
// inside-test treats that as an ambiguous ray and rejects the point.
// Collinear overlap is not detected and reports NoIntersection.
//
// Complexity: O(1), no allocations.
func Intersect(a, b Segment, eps float64) Intersection {
	dxa, dya := a.X1-a.X2, a.Y1-a.Y2
	dxb, dyb := b.X1-b.X2, b.Y1-b.Y2

	det := dxa*dyb - dya*dxb
	if math.Abs(det) <= parallelTol*math.Hypot(dxa, dya)*math.Hypot(dxb, dyb) {
		return Intersection{}
	}

	ca := a.X1*a.Y2 - a.Y1*a.X2
	cb := b.X1*b.Y2 - b.Y1*b.X2
	p := Point{
		X: (ca*dxb - dxa*cb) / det,
		Y: (ca*dyb - dya*cb) / det,
	}

	if p == a.Start() || p == a.End() || p == b.Start() || p == b.End() {
		return Intersection{Kind: EndpointIntersection, Point: p}
	}
	if !inWidenedBox(a, p, eps) || !inWidenedBox(b, p, eps) {
		return Intersection{}
	}

	return Intersection{Kind: InteriorIntersection, Point: p}
}

// inWidenedBox reports whether p lies in the closed bounding box of s grown
// outward by eps on every side.
func inWidenedBox(s Segment, p Point, eps float64) bool {
	return p.X >= math.Min(s.X1, s.X2)-eps && p.X <= math.Max(s.X1, s.X2)+eps &&
		p.Y >= math.Min(s.Y1, s.Y2)-eps && p.Y <= math.Max(s.Y1, s.Y2)+eps
}

// PointAlong returns Start + t·(End − Start). t∈[0,1] stays on the segment;
// values outside that range extrapolate along the supporting line.
func PointAlong(s Segment, t float64) Point {
	return Point{
		X: s.X1 + t*(s.X2-s.X1),
		Y: s.Y1 + t*(s.Y2-s.Y1),
	}
}

// Ray returns the segment of length dist starting at origin along angle
// (radians, 0 = +X, counter-clockwise).
func Ray(origin Point, angle, dist float64) Segment {
	return Segment{
		X1: origin.X,
		Y1: origin.Y,
		X2: origin.X + dist*math.Cos(angle),
		Y2: origin.Y + dist*math.Sin(angle),
	}
}
