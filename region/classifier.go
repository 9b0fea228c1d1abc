package region

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/escapepath/geom"
)

// Classifier answers point-in-boundary queries by majority-vote raycasting.
// It holds no mutable state; the random source is supplied per call, so one
// Classifier may serve several goroutines as long as each has its own rng.
type Classifier struct {
	edges geom.Boundary
	rays  int
	reach float64
	eps   float64
}

// NewClassifier prepares a classifier for b. The ray length is twice the
// bounding-box diagonal plus one, which always exceeds the boundary diameter.
//
// Complexity: O(E).
func NewClassifier(b geom.Boundary, opts Options) *Classifier {
	opts.normalize()

	return &Classifier{
		edges: b,
		rays:  opts.RaycastCount,
		reach: 2*b.Bounds().Diagonal() + 1,
		eps:   opts.RoundingEps,
	}
}

// Inside reports whether p lies inside the boundary.
//
// Steps (per ray, R times):
//  1. Draw an angle uniformly in [0, 2π) and build the ray p→p+reach·dir.
//  2. Test every edge: EndpointIntersection ⇒ return false at once;
//     InteriorIntersection ⇒ crossings++.
//  3. Vote odd/even on the crossing count.
//
// Result: odd votes > even votes. A tie is outside.
//
// Complexity: O(R·E).
func (c *Classifier) Inside(p geom.Point, rng *rand.Rand) bool {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	var odd, even int
	for r := 0; r < c.rays; r++ {
		ray := geom.Ray(p, rng.Float64()*2*math.Pi, c.reach)

		crossings := 0
		for _, e := range c.edges {
			switch geom.Intersect(ray, e, c.eps).Kind {
			case geom.EndpointIntersection:
				return false
			case geom.InteriorIntersection:
				crossings++
			}
		}

		if crossings%2 == 1 {
			odd++
		} else {
			even++
		}
	}

	return odd > even
}

// IsInside is a one-shot convenience around NewClassifier(b, opts).Inside.
func IsInside(p geom.Point, b geom.Boundary, opts Options, rng *rand.Rand) bool {
	return NewClassifier(b, opts).Inside(p, rng)
}
