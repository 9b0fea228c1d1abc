// Package escape - option validation.
//
// Design principles:
//   - Side-effect free; returns ErrInvalidOptions wrapped with the offending
//     field so the message is actionable.
//   - Zero values are allowed where the lower layers substitute defaults;
//     only negative or non-finite values are rejected.
package escape

import (
	"fmt"
	"math"
)

// validateOptions checks every numeric knob of opts.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	type check struct {
		name string
		v    float64
	}
	checks := []check{
		{"RoundingEps", opts.RoundingEps},
		{"MaxChange", opts.MaxChange},
		{"MutationBound", opts.MutationBound},
		{"CloseTol", opts.CloseTol},
		{"Workers", float64(opts.Workers)},
		{"Region.RaycastCount", float64(opts.Region.RaycastCount)},
		{"Region.LineSampleDensity", float64(opts.Region.LineSampleDensity)},
		{"Region.JitterEps", opts.Region.JitterEps},
		{"Region.BulkCount", float64(opts.Region.BulkCount)},
		{"Region.MaxAttempts", float64(opts.Region.MaxAttempts)},
		{"Fitness.HeadingCount", float64(opts.Fitness.HeadingCount)},
		{"Fitness.Margin", opts.Fitness.Margin},
		{"Fitness.Walk.Steps", float64(opts.Fitness.Walk.Steps)},
		{"Fitness.Walk.SegmentLength", opts.Fitness.Walk.SegmentLength},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || c.v < 0 {
			return fmt.Errorf("%w: %s must be finite and ≥ 0, got %g", ErrInvalidOptions, c.name, c.v)
		}
	}

	// A zero MaxChange would freeze every path at zero deltas forever.
	if opts.MaxChange == 0 {
		return fmt.Errorf("%w: MaxChange must be > 0", ErrInvalidOptions)
	}

	return nil
}

// resolveOptions fills derived fields after validation: the shared rounding
// tolerance, the worker count and the canonical walker settings.
func resolveOptions(opts Options) Options {
	if opts.RoundingEps > 0 {
		opts.Region.RoundingEps = opts.RoundingEps
		opts.Fitness.Walk.RoundingEps = opts.RoundingEps
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Fitness.Walk.Steps == 0 {
		opts.Fitness.Walk.Steps = DefaultOptions().Fitness.Walk.Steps
	}
	if opts.Fitness.Walk.SegmentLength == 0 {
		opts.Fitness.Walk.SegmentLength = DefaultOptions().Fitness.Walk.SegmentLength
	}

	return opts
}
