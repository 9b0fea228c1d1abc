package walker

import (
	"math"

	"github.com/katalvlaran/escapepath/geom"
)

// Defaults used by DefaultOptions and for zero-valued fields.
const (
	DefaultSteps         = 100
	DefaultSegmentLength = 5.0
)

// Path is an ordered sequence of heading deltas in radians, one per step.
type Path []float64

// NewPath returns the zero-delta (straight line) path of the given length.
func NewPath(steps int) Path {
	if steps < 0 {
		steps = 0
	}
	return make(Path, steps)
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

// Equal reports bit-for-bit equality of two paths.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if math.Float64bits(p[i]) != math.Float64bits(q[i]) {
			return false
		}
	}
	return true
}

// Options configures the simulation.
//   - Steps         — number of simulated steps.
//   - SegmentLength — distance advanced per step.
//   - RoundingEps   — ε_r forwarded to geom.Intersect.
type Options struct {
	Steps         int
	SegmentLength float64
	RoundingEps   float64
}

// DefaultOptions returns Steps=100, SegmentLength=5, RoundingEps=geom.DefaultRoundingEps.
func DefaultOptions() Options {
	return Options{
		Steps:         DefaultSteps,
		SegmentLength: DefaultSegmentLength,
		RoundingEps:   geom.DefaultRoundingEps,
	}
}

func (o *Options) normalize() {
	if o.Steps <= 0 {
		o.Steps = DefaultSteps
	}
	if o.SegmentLength <= 0 {
		o.SegmentLength = DefaultSegmentLength
	}
	if o.RoundingEps < 0 {
		o.RoundingEps = geom.DefaultRoundingEps
	}
}

// Horizon is the capped distance of a walk that never escapes.
func (o Options) Horizon() float64 {
	o.normalize()
	return float64(o.Steps) * o.SegmentLength
}

// Result describes one simulated walk.
type Result struct {
	Distance float64    // distance travelled; Horizon() when !Escaped
	Escaped  bool       // a boundary contact ended the walk
	Exit     geom.Point // contact point when Escaped, final position otherwise
	Steps    int        // steps started, including the escaping one
}
