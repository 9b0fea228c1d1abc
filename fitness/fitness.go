package fitness

import (
	"math"

	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/walker"
)

// Defaults used by DefaultOptions and for zero-valued fields.
const (
	DefaultHeadingCount = 200
	DefaultMargin       = 1.0
)

// Options configures WorstCase.
type Options struct {
	// HeadingCount is N, the number of initial headings 2πk/N per sample.
	HeadingCount int
	// Margin excludes trials within Margin of the horizon from the maximum.
	Margin float64
	// Walk configures every simulated walk.
	Walk walker.Options
}

// DefaultOptions returns HeadingCount=200, Margin=1 and walker defaults.
func DefaultOptions() Options {
	return Options{
		HeadingCount: DefaultHeadingCount,
		Margin:       DefaultMargin,
		Walk:         walker.DefaultOptions(),
	}
}

func (o *Options) normalize() {
	if o.HeadingCount <= 0 {
		o.HeadingCount = DefaultHeadingCount
	}
	if o.Margin < 0 {
		o.Margin = DefaultMargin
	}
}

// Result identifies the worst-case (start, heading) pair for a path.
type Result struct {
	Distance float64    // worst finite escape distance, or the horizon
	Heading  float64    // initial heading of the worst trial
	Start    geom.Point // start point of the worst trial
	Escaped  bool       // false when no trial escaped within the horizon
}

// WorstCase evaluates path over samples × headings and reduces to the maximum
// finite escape distance.
//
// The maximum uses a strict comparison, so among equal distances the first
// trial in (sample, heading) order is reported. The returned Distance does not
// depend on the order of samples.
//
// With no qualifying trial the result is {Horizon, 0, samples[0], false};
// with no samples at all Start is the zero Point.
//
// Complexity: O(|samples|·N·Steps·E).
func WorstCase(path walker.Path, samples []geom.Point, b geom.Boundary, opts Options) Result {
	opts.normalize()

	horizon := opts.Walk.Horizon()
	limit := horizon - opts.Margin
	step := 2 * math.Pi / float64(opts.HeadingCount)

	worst := Result{Distance: horizon}
	if len(samples) > 0 {
		worst.Start = samples[0]
	}

	best := -1.0
	for _, p := range samples {
		for k := 0; k < opts.HeadingCount; k++ {
			h := float64(k) * step
			d := walker.Distance(p, h, path, b, opts.Walk)
			if d >= limit || d <= best {
				continue
			}
			best = d
			worst = Result{Distance: d, Heading: h, Start: p, Escaped: true}
		}
	}

	return worst
}
