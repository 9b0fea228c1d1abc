package walker

import (
	"math"

	"github.com/katalvlaran/escapepath/geom"
)

// Simulate walks path from start with the given initial heading.
//
// Steps, for i in [0, Steps):
//  1. heading += path[i] (deltas past len(path) count as zero).
//  2. next = pos + SegmentLength·(cos heading, sin heading).
//  3. For each edge in order: a non-None Intersect of pos→next ends the walk
//     with Distance += |pos − contact|.
//  4. Otherwise Distance += SegmentLength, pos = next.
//
// Complexity: O(Steps·E), no allocations.
func Simulate(start geom.Point, heading float64, path Path, b geom.Boundary, opts Options) Result {
	res, _ := walk(start, heading, path, b, opts, false)
	return res
}

// Distance returns the distance travelled before exit, capped at Horizon().
func Distance(start geom.Point, heading float64, path Path, b geom.Boundary, opts Options) float64 {
	res, _ := walk(start, heading, path, b, opts, false)
	return res.Distance
}

// Trace returns the positions visited before each step followed by the last
// point reached: the exit point when the walker escapes, the final position
// otherwise. It follows exactly the walk of Distance.
func Trace(start geom.Point, heading float64, path Path, b geom.Boundary, opts Options) []geom.Point {
	_, pts := walk(start, heading, path, b, opts, true)
	return pts
}

func walk(start geom.Point, heading float64, path Path, b geom.Boundary, opts Options, record bool) (Result, []geom.Point) {
	opts.normalize()

	var (
		pos      = start
		dir      = heading
		traveled float64
		trace    []geom.Point
	)
	if record {
		trace = make([]geom.Point, 0, opts.Steps+1)
	}

	for i := 0; i < opts.Steps; i++ {
		if record {
			trace = append(trace, pos)
		}
		if i < len(path) {
			dir += path[i]
		}
		next := geom.Point{
			X: pos.X + opts.SegmentLength*math.Cos(dir),
			Y: pos.Y + opts.SegmentLength*math.Sin(dir),
		}
		step := geom.Seg(pos, next)

		for _, e := range b {
			hit := geom.Intersect(step, e, opts.RoundingEps)
			if !hit.Hit() {
				continue
			}
			traveled += pos.Dist(hit.Point)
			if record {
				trace = append(trace, hit.Point)
			}
			return Result{Distance: traveled, Escaped: true, Exit: hit.Point, Steps: i + 1}, trace
		}

		traveled += opts.SegmentLength
		pos = next
	}

	if record {
		trace = append(trace, pos)
	}

	return Result{Distance: opts.Horizon(), Exit: pos, Steps: opts.Steps}, trace
}
