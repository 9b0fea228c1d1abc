package region

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/escapepath/geom"
)

// jitterDirs are the four unit offsets applied to each edge station.
var jitterDirs = [4]geom.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// Sample builds the SampleSet for b in two passes (edge stations, then bulk
// rejection sampling). See the package documentation for details.
//
// Contract:
//   - b is expected to be a valid closed boundary; Sample does not validate it.
//   - rng drives both the classifier angles and the bulk draws.
//
// Errors: ErrSamplingExhausted (wrapped with counts) when the bulk pass runs
// out of attempts. The points gathered so far are returned with the error.
//
// Complexity: O(((K+1)·4·E + A)·R·E) where A ≤ MaxAttempts.
func Sample(b geom.Boundary, opts Options, rng *rand.Rand) (SampleSet, Stats, error) {
	opts.normalize()
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	var (
		cls   = NewClassifier(b, opts)
		stats Stats
		set   = make(SampleSet, 0, len(b)*(opts.LineSampleDensity+1)+opts.BulkCount)
	)

	// Pass 1: jittered stations along every edge.
	for _, e := range b {
		for j := 0; j <= opts.LineSampleDensity; j++ {
			station := geom.PointAlong(e, float64(j)/float64(opts.LineSampleDensity))
			for _, d := range jitterDirs {
				q := station.Add(d.Scale(opts.JitterEps))
				if cls.Inside(q, rng) {
					set = append(set, q)
					stats.EdgePoints++
				}
			}
		}
	}

	// Pass 2: bounded rejection sampling in the bounding box.
	box := b.Bounds()
	for stats.BulkPoints < opts.BulkCount {
		if stats.Attempts >= opts.MaxAttempts {
			return set, stats, fmt.Errorf("%w: %d of %d interior points after %d attempts",
				ErrSamplingExhausted, stats.BulkPoints, opts.BulkCount, stats.Attempts)
		}
		stats.Attempts++

		q := geom.Point{
			X: box.Min.X + rng.Float64()*box.Width(),
			Y: box.Min.Y + rng.Float64()*box.Height(),
		}
		if cls.Inside(q, rng) {
			set = append(set, q)
			stats.BulkPoints++
		}
	}

	return set, stats, nil
}
