// Package escape - RNG utilities.
//
// Every random draw of a solve (sampling angles, bulk points, seed paths,
// mutation offsets, crossover blends) comes from streams created here.
//
// Goals:
//   - Determinism: same seed ⇒ identical solve.
//   - Encapsulation: a single RNG factory; no time-based sources.
//   - Independence: sampling and evolution use separate derived streams, so
//     changing sampler settings does not reshuffle the evolutionary draws.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Streams are owned by one Solver.
package escape

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Stream identifiers for deriveRNG.
const (
	streamSampling  uint64 = 1
	streamEvolution uint64 = 2
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent stream from base. base.Int63() is consumed
// once so that consecutive derivations never collide; base==nil uses
// defaultRNGSeed as the parent.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// uniform returns a draw from [-m, m).
func uniform(rng *rand.Rand, m float64) float64 {
	return (2*rng.Float64() - 1) * m
}
