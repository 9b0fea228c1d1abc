package region

import (
	"errors"

	"github.com/katalvlaran/escapepath/geom"
)

// ErrSamplingExhausted is returned when the bulk pass could not collect
// BulkCount interior points within MaxAttempts draws.
var ErrSamplingExhausted = errors.New("region: sampling attempts exhausted")

// Defaults used by DefaultOptions and by normalize for zero-valued fields.
const (
	DefaultRaycastCount      = 5
	DefaultLineSampleDensity = 10
	DefaultJitterEps         = 1e-3
	DefaultBulkCount         = 200
	DefaultMaxAttempts       = 100000
)

// Options configures the classifier and the sampler.
//
// Fields:
//   - RaycastCount      — R, rays per classification (odd values avoid ties).
//   - LineSampleDensity — K, stations per edge are K+1.
//   - JitterEps         — offset applied to each station along ±x and ±y.
//   - BulkCount         — M, interior points collected by rejection sampling.
//   - MaxAttempts       — ceiling on bulk draws before ErrSamplingExhausted.
//   - RoundingEps       — ε_r forwarded to geom.Intersect.
type Options struct {
	RaycastCount      int
	LineSampleDensity int
	JitterEps         float64
	BulkCount         int
	MaxAttempts       int
	RoundingEps       float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		RaycastCount:      DefaultRaycastCount,
		LineSampleDensity: DefaultLineSampleDensity,
		JitterEps:         DefaultJitterEps,
		BulkCount:         DefaultBulkCount,
		MaxAttempts:       DefaultMaxAttempts,
		RoundingEps:       geom.DefaultRoundingEps,
	}
}

// normalize replaces non-positive fields with their defaults.
func (o *Options) normalize() {
	if o.RaycastCount <= 0 {
		o.RaycastCount = DefaultRaycastCount
	}
	if o.LineSampleDensity <= 0 {
		o.LineSampleDensity = DefaultLineSampleDensity
	}
	if o.JitterEps <= 0 {
		o.JitterEps = DefaultJitterEps
	}
	if o.BulkCount < 0 {
		o.BulkCount = DefaultBulkCount
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.RoundingEps < 0 {
		o.RoundingEps = geom.DefaultRoundingEps
	}
}

// SampleSet is a collection of points previously confirmed interior to a
// Boundary. It is read-only once built.
type SampleSet []geom.Point

// Stats reports how a SampleSet was assembled.
type Stats struct {
	EdgePoints int // accepted jittered edge stations
	BulkPoints int // accepted rejection samples
	Attempts   int // bulk draws consumed
}
