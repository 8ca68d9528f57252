package dsmga2

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTournamentSelectPrefersHigherFitness(t *testing.T) {
	length := 8
	z := testZobrist(length)
	rng := rand.New(rand.NewSource(7))
	pop := NewPopulation(length, 4, z, rng)

	cfg := RunConfig{L: length, N: 4, Oracle: oneMaxOracle{}}
	rc := newRunContext(cfg, z)

	allOnes := NewIndividual(length, z)
	for i := 0; i < length; i++ {
		allOnes.SetBit(i, 1)
	}
	pop.ReplaceAt(2, allOnes)

	for i := 0; i < 50; i++ {
		winner := pop.TournamentSelect(length, rc)
		assert.Equal(t, 2, winner, "a large tournament should reliably surface the all-ones individual")
	}
}

func TestBestIndexReturnsFittest(t *testing.T) {
	length := 6
	z := testZobrist(length)
	rng := rand.New(rand.NewSource(11))
	pop := NewPopulation(length, 3, z, rng)

	cfg := RunConfig{L: length, N: 3, Oracle: oneMaxOracle{}}
	rc := newRunContext(cfg, z)

	best := NewIndividual(length, z)
	for i := 0; i < length; i++ {
		best.SetBit(i, 1)
	}
	pop.ReplaceAt(1, best)

	assert.Equal(t, 1, pop.BestIndex(rc))
}

func TestConvergedDetectsSharedKey(t *testing.T) {
	length := 5
	z := testZobrist(length)
	rng := rand.New(rand.NewSource(2))
	pop := NewPopulation(length, 3, z, rng)

	same := NewIndividual(length, z)
	same.SetBit(0, 1)
	pop.ReplaceAt(0, same.Clone())
	assert.False(t, pop.Converged())

	pop.ReplaceAt(1, same.Clone())
	pop.ReplaceAt(2, same.Clone())
	assert.True(t, pop.Converged())
}

func TestMeanFitnessAveragesAcrossPopulation(t *testing.T) {
	length := 4
	z := testZobrist(length)
	rng := rand.New(rand.NewSource(5))
	pop := NewPopulation(length, 2, z, rng)

	cfg := RunConfig{L: length, N: 2, Oracle: oneMaxOracle{}}
	rc := newRunContext(cfg, z)

	zero := NewIndividual(length, z)
	pop.ReplaceAt(0, zero)

	four := NewIndividual(length, z)
	for i := 0; i < length; i++ {
		four.SetBit(i, 1)
	}
	pop.ReplaceAt(1, four)

	assert.Equal(t, float64(2), pop.MeanFitness(rc))
}
