package escape

import (
	"errors"
	"math"

	"github.com/katalvlaran/escapepath/fitness"
	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/region"
	"github.com/katalvlaran/escapepath/walker"
)

// Sentinel errors. Boundary and sampling failures are reported with the
// sentinels of their own packages (geom.ErrInvalidBoundary,
// region.ErrSamplingExhausted) so callers can errors.Is against them directly.
var (
	// ErrInvalidOptions indicates a negative or otherwise unusable option value.
	ErrInvalidOptions = errors.New("escape: invalid options")

	// ErrNotPrepared is returned by Step before Prepare succeeded.
	ErrNotPrepared = errors.New("escape: solver not prepared")

	// ErrInvalidBoundary aliases geom.ErrInvalidBoundary for callers that only
	// import this package.
	ErrInvalidBoundary = geom.ErrInvalidBoundary

	// ErrSamplingExhausted aliases region.ErrSamplingExhausted.
	ErrSamplingExhausted = region.ErrSamplingExhausted
)

// PopulationSize is the fixed number of paths per generation.
const PopulationSize = 7

// Defaults for the optimizer-level options.
const (
	DefaultMaxChange = math.Pi / 8
	DefaultCloseTol  = 1e-9
	DefaultWorkers   = 1
)

// Options configures a Solver.
//
// Fields:
//   - Region        — classifier and sampler settings.
//   - Fitness       — heading grid, margin and walker settings (Fitness.Walk).
//   - RoundingEps   — ε_r used by every intersection test; overrides the
//     RoundingEps fields of Region and Fitness.Walk.
//   - MaxChange     — bound of the uniform per-step delta in random seeds and
//     mutation offsets, [-MaxChange, MaxChange].
//   - MutationBound — if > 0, mutated deltas are clamped to
//     [-MutationBound, MutationBound]; 0 keeps unbounded additive drift.
//   - Seed          — RNG seed; 0 selects a fixed default seed.
//   - Workers       — goroutines evaluating the population; ≤1 is sequential.
//   - CloseTol      — closure and degeneracy tolerance for boundary validation.
type Options struct {
	Region        region.Options
	Fitness       fitness.Options
	RoundingEps   float64
	MaxChange     float64
	MutationBound float64
	Seed          int64
	Workers       int
	CloseTol      float64
}

// DefaultOptions returns the documented defaults of every layer.
func DefaultOptions() Options {
	return Options{
		Region:      region.DefaultOptions(),
		Fitness:     fitness.DefaultOptions(),
		RoundingEps: geom.DefaultRoundingEps,
		MaxChange:   DefaultMaxChange,
		Workers:     DefaultWorkers,
		CloseTol:    DefaultCloseTol,
	}
}

// Steps returns the configured path length.
func (o Options) Steps() int { return o.Fitness.Walk.Steps }

// Generation is what Step reports about the generation it just evaluated.
type Generation struct {
	Index       int          // 0 for the seed population
	Best        walker.Path  // winning path (independent copy)
	Distance    float64      // its worst-case distance
	Heading     float64      // heading of the worst-case trial
	Start       geom.Point   // start point of the worst-case trial
	Escaped     bool         // false when the score is the capped horizon
	Trace       []geom.Point // walk of Best from (Start, Heading)
	BestIndex   int          // index of Best in the evaluated population
	SecondIndex int          // index of the second-best parent
	Scores      []float64    // worst-case distance of every evaluated path
}
