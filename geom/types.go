package geom

import (
	"errors"
	"math"
)

// ErrInvalidBoundary is returned when a Boundary has fewer than three edges,
// non-finite coordinates, a broken chain, or a degenerate bounding box.
var ErrInvalidBoundary = errors.New("geom: invalid boundary")

// DefaultRoundingEps widens segment bounding boxes during classification to
// absorb floating-point error of the line/line solve.
const DefaultRoundingEps = 1e-9

// parallelTol is the relative threshold on |det| / (|a|·|b|) (the sine of the
// angle between the segments) below which two segments count as parallel.
const parallelTol = 1e-12

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns k·p.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(q.X-p.X, q.Y-p.Y) }

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Segment is a directed line segment from (X1, Y1) to (X2, Y2).
// The same type serves boundary edges, walker steps and classifier rays.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Seg builds the segment a→b.
func Seg(a, b Point) Segment { return Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y} }

// Start returns the first endpoint.
func (s Segment) Start() Point { return Point{X: s.X1, Y: s.Y1} }

// End returns the second endpoint.
func (s Segment) End() Point { return Point{X: s.X2, Y: s.Y2} }

// Length returns |End-Start|.
func (s Segment) Length() float64 { return math.Hypot(s.X2-s.X1, s.Y2-s.Y1) }

// Reverse returns the segment End→Start.
func (s Segment) Reverse() Segment { return Segment{X1: s.X2, Y1: s.Y2, X2: s.X1, Y2: s.Y1} }

// IntersectionKind tags the outcome of Intersect.
type IntersectionKind int

const (
	// NoIntersection: parallel, collinear, degenerate, or the crossing lies
	// outside at least one of the two segments.
	NoIntersection IntersectionKind = iota

	// InteriorIntersection: the segments cross at a point that is not an
	// endpoint of either of them.
	InteriorIntersection

	// EndpointIntersection: the crossing coincides exactly with an endpoint.
	// Consumers treat it as the ambiguous, boundary-touching case.
	EndpointIntersection
)

// String implements fmt.Stringer.
func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "none"
	case InteriorIntersection:
		return "interior"
	case EndpointIntersection:
		return "endpoint"
	default:
		return "unknown"
	}
}

// Intersection is the tagged result of Intersect. Point is meaningful only
// when Kind != NoIntersection.
type Intersection struct {
	Kind  IntersectionKind
	Point Point
}

// Hit reports whether the segments touch at all.
func (in Intersection) Hit() bool { return in.Kind != NoIntersection }
