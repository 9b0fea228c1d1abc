package escape

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/escapepath/walker"
)

// RandomPath returns a path of the given length whose deltas are drawn
// uniformly from [-maxChange, maxChange].
func RandomPath(steps int, maxChange float64, rng *rand.Rand) walker.Path {
	p := walker.NewPath(steps)
	for i := range p {
		p[i] = uniform(rng, maxChange)
	}
	return p
}

// Mutate returns a new path with every delta shifted by an independent
// uniform offset in [-maxChange, maxChange]. The shift is additive and, with
// bound == 0, unbounded across generations. bound > 0 clamps each mutated
// delta to [-bound, bound]. p is not modified.
func Mutate(p walker.Path, maxChange, bound float64, rng *rand.Rand) walker.Path {
	out := make(walker.Path, len(p))
	for i, v := range p {
		v += uniform(rng, maxChange)
		if bound > 0 {
			v = math.Max(-bound, math.Min(bound, v))
		}
		out[i] = v
	}
	return out
}

// Crossover is a per-gene blend: child[i] is drawn uniformly between a[i] and
// b[i]. The parents must have equal length; the child has len(a) entries and
// a missing b[i] is taken as a[i].
func Crossover(a, b walker.Path, rng *rand.Rand) walker.Path {
	out := make(walker.Path, len(a))
	for i, lo := range a {
		hi := lo
		if i < len(b) {
			hi = b[i]
		}
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// rankTopTwo returns the indices of the lowest and second-lowest scores.
// Ties resolve to the lower index. len(scores) must be ≥ 2.
func rankTopTwo(scores []float64) (best, second int) {
	best = 0
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[best] {
			best = i
		}
	}
	second = -1
	for i := range scores {
		if i == best {
			continue
		}
		if second < 0 || scores[i] < scores[second] {
			second = i
		}
	}
	return best, second
}

// seedPopulation builds generation zero: the zero-delta path followed by
// PopulationSize-1 random paths.
func seedPopulation(steps int, maxChange float64, rng *rand.Rand) []walker.Path {
	pop := make([]walker.Path, 0, PopulationSize)
	pop = append(pop, walker.NewPath(steps))
	for len(pop) < PopulationSize {
		pop = append(pop, RandomPath(steps, maxChange, rng))
	}
	return pop
}

// breed produces the next population from the two parents, in order:
// best, mutate(best), four blends of best and second, mutate(best).
// Every entry is a fresh slice; the parents are never aliased.
func breed(best, second walker.Path, maxChange, bound float64, rng *rand.Rand) []walker.Path {
	next := make([]walker.Path, 0, PopulationSize)
	next = append(next, best.Clone())
	next = append(next, Mutate(best, maxChange, bound, rng))
	for i := 0; i < 4; i++ {
		next = append(next, Crossover(best, second, rng))
	}
	next = append(next, Mutate(best, maxChange, bound, rng))
	return next
}
