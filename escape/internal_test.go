package escape

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escapepath/walker"
)

func TestRankTopTwo(t *testing.T) {
	tests := []struct {
		name         string
		scores       []float64
		best, second int
	}{
		{"distinct", []float64{5, 3, 4, 9}, 1, 2},
		{"best first", []float64{1, 2, 3}, 0, 1},
		{"tie for best goes to lower index", []float64{4, 2, 2, 7}, 1, 2},
		{"tie for second goes to lower index", []float64{1, 5, 3, 3}, 0, 2},
		{"all equal", []float64{7, 7, 7, 7, 7, 7, 7}, 0, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, s := rankTopTwo(tc.scores)
			assert.Equal(t, tc.best, b)
			assert.Equal(t, tc.second, s)
		})
	}
}

func TestBreed_LayoutAndAliasing(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	best := RandomPath(12, 0.2, rng)
	second := RandomPath(12, 0.2, rng)

	next := breed(best, second, 0.2, 0, rng)
	require.Len(t, next, PopulationSize)
	assert.True(t, next[0].Equal(best))

	next[0][0] = 99
	assert.NotEqual(t, 99.0, best[0], "elite must be a copy")

	for i := 2; i <= 5; i++ {
		for g := range next[i] {
			lo, hi := best[g], second[g]
			if lo > hi {
				lo, hi = hi, lo
			}
			assert.True(t, next[i][g] >= lo && next[i][g] <= hi, "child %d gene %d", i, g)
		}
	}
}

func TestSeedPopulation(t *testing.T) {
	pop := seedPopulation(8, 0.2, rand.New(rand.NewSource(3)))
	require.Len(t, pop, PopulationSize)
	assert.True(t, pop[0].Equal(walker.NewPath(8)))
	assert.False(t, pop[1].Equal(pop[2]))
}

func TestRNG_DeriveIsDeterministicAndIndependent(t *testing.T) {
	a1 := deriveRNG(rngFromSeed(9), streamSampling).Int63()
	a2 := deriveRNG(rngFromSeed(9), streamSampling).Int63()
	b := deriveRNG(rngFromSeed(9), streamEvolution).Int63()
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, b)

	assert.Equal(t, rngFromSeed(0).Int63(), rngFromSeed(defaultRNGSeed).Int63(), "seed 0 maps to the default seed")
	assert.Equal(t, deriveRNG(nil, 5).Int63(), rand.New(rand.NewSource(deriveSeed(defaultRNGSeed, 5))).Int63())
}
