package geom

import (
	"fmt"
	"math"

	jb "github.com/jbeda/geom"
)

// Boundary is an ordered sequence of edges whose endpoints chain into a closed
// loop: edge i ends where edge i+1 starts, and the last edge ends at the start
// of the first. A Boundary is treated as immutable once handed to a solver.
type Boundary []Segment

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Width returns Max.X − Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y − Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Area returns Width·Height.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Diagonal returns the length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 { return math.Hypot(r.Width(), r.Height()) }

// Contains reports whether p lies in the closed rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// NewBoundary closes the vertex ring v0→v1→…→vn-1→v0 into edges.
// Fewer than two vertices yield an empty Boundary.
func NewBoundary(vertices ...Point) Boundary {
	n := len(vertices)
	if n < 2 {
		return Boundary{}
	}
	b := make(Boundary, n)
	for i := 0; i < n; i++ {
		b[i] = Seg(vertices[i], vertices[(i+1)%n])
	}

	return b
}

// BoundaryFromTuples converts (x1, y1, x2, y2) tuples into a Boundary.
// The result is not validated; see Validate.
func BoundaryFromTuples(tuples [][4]float64) Boundary {
	b := make(Boundary, len(tuples))
	for i, t := range tuples {
		b[i] = Segment{X1: t[0], Y1: t[1], X2: t[2], Y2: t[3]}
	}

	return b
}

// Tuples is the inverse of BoundaryFromTuples.
func (b Boundary) Tuples() [][4]float64 {
	out := make([][4]float64, len(b))
	for i, s := range b {
		out[i] = [4]float64{s.X1, s.Y1, s.X2, s.Y2}
	}

	return out
}

// Clone returns an independent copy of b.
func (b Boundary) Clone() Boundary {
	return append(Boundary(nil), b...)
}

// Vertices returns the start point of every edge, in order.
func (b Boundary) Vertices() []Point {
	out := make([]Point, len(b))
	for i, s := range b {
		out[i] = s.Start()
	}

	return out
}

// Bounds returns the axis-aligned bounding box of all edge endpoints.
// An empty Boundary yields the zero Rect.
//
// Complexity: O(E).
func (b Boundary) Bounds() Rect {
	if len(b) == 0 {
		return Rect{}
	}
	first := jb.Coord{X: b[0].X1, Y: b[0].Y1}
	box := jb.Rect{Min: first, Max: first}
	for _, s := range b {
		box.ExpandToContainCoord(jb.Coord{X: s.X1, Y: s.Y1})
		box.ExpandToContainCoord(jb.Coord{X: s.X2, Y: s.Y2})
	}

	return Rect{
		Min: Point{X: box.Min.X, Y: box.Min.Y},
		Max: Point{X: box.Max.X, Y: box.Max.Y},
	}
}

// Area returns the absolute shoelace area enclosed by the edge chain.
// For a chain that is not closed the value is meaningless.
func (b Boundary) Area() float64 {
	var sum float64
	for _, s := range b {
		sum += s.X1*s.Y2 - s.X2*s.Y1
	}

	return math.Abs(sum) / 2
}

// Validate checks the structural contract of a Boundary:
//   - at least three edges;
//   - every coordinate finite;
//   - closed chain: |End(i) − Start(i+1 mod n)| ≤ tol for all i;
//   - non-degenerate bounding box: width and height both > tol.
//
// Simplicity (no self-intersections) is NOT checked.
// All failures wrap ErrInvalidBoundary.
//
// Complexity: O(E).
func (b Boundary) Validate(tol float64) error {
	n := len(b)
	if n < 3 {
		return fmt.Errorf("%w: need at least 3 edges, got %d", ErrInvalidBoundary, n)
	}

	var i int
	for i = 0; i < n; i++ {
		if !b[i].Start().IsFinite() || !b[i].End().IsFinite() {
			return fmt.Errorf("%w: edge %d has non-finite coordinates", ErrInvalidBoundary, i)
		}
	}
	for i = 0; i < n; i++ {
		if gap := b[i].End().Dist(b[(i+1)%n].Start()); gap > tol {
			return fmt.Errorf("%w: edge %d does not meet edge %d (gap %g)", ErrInvalidBoundary, i, (i+1)%n, gap)
		}
	}

	box := b.Bounds()
	if box.Width() <= tol || box.Height() <= tol {
		return fmt.Errorf("%w: degenerate bounding box %gx%g", ErrInvalidBoundary, box.Width(), box.Height())
	}

	return nil
}
