package escape

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/escapepath/fitness"
	"github.com/katalvlaran/escapepath/geom"
	"github.com/katalvlaran/escapepath/region"
	"github.com/katalvlaran/escapepath/walker"
)

// Solver owns one escape-path search over a fixed Boundary.
type Solver struct {
	boundary geom.Boundary
	opts     Options

	sampleRNG *rand.Rand
	evolveRNG *rand.Rand

	samples    region.SampleSet
	stats      region.Stats
	population []walker.Path
	generation int
	prepared   bool
}

// New validates opts and b and returns an unprepared Solver.
//
// Errors:
//   - ErrInvalidOptions  — negative, non-finite or zero MaxChange values.
//   - ErrInvalidBoundary — fewer than 3 edges, open chain, non-finite
//     coordinates, or a bounding box thinner than CloseTol.
//
// The boundary is copied; later changes to b do not affect the Solver.
func New(b geom.Boundary, opts Options) (*Solver, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	opts = resolveOptions(opts)

	if err := b.Validate(opts.CloseTol); err != nil {
		return nil, err
	}

	base := rngFromSeed(opts.Seed)

	return &Solver{
		boundary:  b.Clone(),
		opts:      opts,
		sampleRNG: deriveRNG(base, streamSampling),
		evolveRNG: deriveRNG(base, streamEvolution),
	}, nil
}

// Prepare computes the SampleSet and seeds generation zero. It must succeed
// once before Step; calling it again resamples and restarts the search.
//
// Errors: region.ErrSamplingExhausted when the bulk pass runs out of attempts
// or no interior sample could be found at all.
func (s *Solver) Prepare() error {
	samples, stats, err := region.Sample(s.boundary, s.opts.Region, s.sampleRNG)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("%w: no interior samples", region.ErrSamplingExhausted)
	}

	s.samples = samples
	s.stats = stats
	s.population = seedPopulation(s.opts.Steps(), s.opts.MaxChange, s.evolveRNG)
	s.generation = 0
	s.prepared = true

	Logger().Info("escape: prepared",
		"edges", len(s.boundary),
		"samples", len(samples),
		"edge_samples", stats.EdgePoints,
		"bulk_samples", stats.BulkPoints,
		"attempts", stats.Attempts,
		"population", len(s.population),
	)

	return nil
}

// Step runs one generation: evaluate all paths, select best and second-best,
// breed the next population and swap it in.
//
// The returned Generation describes the population that was just evaluated;
// its Best path is the first member of the new population, bit for bit.
//
// Complexity: O(PopulationSize · |samples| · HeadingCount · Steps · E).
func (s *Solver) Step() (Generation, error) {
	if !s.prepared {
		return Generation{}, ErrNotPrepared
	}

	results := s.evaluate(s.population)
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Distance
	}

	bi, si := rankTopTwo(scores)
	best, second := s.population[bi], s.population[si]
	worst := results[bi]

	gen := Generation{
		Index:       s.generation,
		Best:        best.Clone(),
		Distance:    worst.Distance,
		Heading:     worst.Heading,
		Start:       worst.Start,
		Escaped:     worst.Escaped,
		Trace:       walker.Trace(worst.Start, worst.Heading, best, s.boundary, s.opts.Fitness.Walk),
		BestIndex:   bi,
		SecondIndex: si,
		Scores:      scores,
	}

	s.population = breed(best, second, s.opts.MaxChange, s.opts.MutationBound, s.evolveRNG)
	s.generation++

	Logger().Debug("escape: generation",
		"index", gen.Index,
		"distance", gen.Distance,
		"escaped", gen.Escaped,
		"best", bi,
		"second", si,
	)

	return gen, nil
}

// evaluate scores every path. Evaluation is pure, so running it on several
// workers yields exactly the sequential results.
func (s *Solver) evaluate(pop []walker.Path) []fitness.Result {
	results := make([]fitness.Result, len(pop))
	if s.opts.Workers <= 1 {
		for i, p := range pop {
			results[i] = fitness.WorstCase(p, s.samples, s.boundary, s.opts.Fitness)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(s.opts.Workers)
	for i, p := range pop {
		g.Go(func() error {
			results[i] = fitness.WorstCase(p, s.samples, s.boundary, s.opts.Fitness)
			return nil
		})
	}
	g.Wait() // workers never return an error

	return results
}

// Population returns a deep copy of the live population.
func (s *Solver) Population() []walker.Path {
	out := make([]walker.Path, len(s.population))
	for i, p := range s.population {
		out[i] = p.Clone()
	}
	return out
}

// Samples returns a copy of the SampleSet (nil before Prepare).
func (s *Solver) Samples() region.SampleSet {
	if s.samples == nil {
		return nil
	}
	return append(region.SampleSet(nil), s.samples...)
}

// SampleStats reports how the SampleSet was assembled.
func (s *Solver) SampleStats() region.Stats { return s.stats }

// Boundary returns a copy of the solver's boundary.
func (s *Solver) Boundary() geom.Boundary { return s.boundary.Clone() }

// Generations returns the number of completed Step calls since Prepare.
func (s *Solver) Generations() int { return s.generation }

// Options returns the resolved options in effect.
func (s *Solver) Options() Options { return s.opts }
