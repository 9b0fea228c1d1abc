// Package escape searches for a single fixed escape path, a sequence of
// heading changes, that minimises the worst-case distance a walker starting
// anywhere inside a closed polygon, facing any direction, needs to cross the
// boundary.
//
// The search is a small generational optimizer:
//
//	population (7 paths) ──► evaluate worst case of each (fitness.WorstCase)
//	      ▲                           │
//	      │                 best, second-best (ties → lower index)
//	      │                           ▼
//	      └── [best, mutate(best), blend(best,second)×4, mutate(best)]
//
// Usage:
//
//	opts := escape.DefaultOptions()
//	opts.Seed = 42                       // reproducible run
//	s, err := escape.New(boundary, opts) // ErrInvalidBoundary / ErrInvalidOptions
//	if err != nil { ... }
//	if err := s.Prepare(); err != nil { ... } // region.ErrSamplingExhausted
//	for {
//	    g, err := s.Step() // one full generation
//	    ...
//	}
//
// The solver has no stopping criterion of its own; see package runner for the
// caller-side policy. Step always completes its full evaluation pass
// (7 × samples × headings walks) before returning.
//
// Determinism: all randomness flows from Options.Seed through independent
// derived streams for sampling and evolution; seed==0 selects a fixed default
// seed. Options.Workers parallelises fitness evaluation without affecting
// results; evaluation consumes no randomness.
//
// Concurrency: a Solver is owned by one goroutine. Boundary and samples are
// read-only and may be shared; the population is replaced wholesale each
// generation and never mutated in place.
package escape
