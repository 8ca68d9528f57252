package dsmga2

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestrictedMixingNeverDecreasesFitness(t *testing.T) {
	length, n := 12, 20
	z := testZobrist(length)
	rng := rand.New(rand.NewSource(3))
	pop := NewPopulation(length, n, z, rng)

	cfg := RunConfig{L: length, N: n, Oracle: oneMaxOracle{}}
	rc := newRunContext(cfg, z)

	fc := pop.FastCounting()
	graph := BuildLinkageGraph(fc)
	masks := BuildMasks(graph, fc, 4)

	before := make([]float64, n)
	for i := 0; i < n; i++ {
		before[i] = pop.At(i).Evaluate(rc)
	}

	for i := 0; i < n; i++ {
		for _, mask := range masks {
			if accepted, _ := RestrictedMixing(pop, i, mask, rc); accepted {
				break
			}
		}
	}

	for i := 0; i < n; i++ {
		after := pop.At(i).Evaluate(rc)
		assert.GreaterOrEqual(t, after, before[i], "restricted mixing must never decrease an individual's fitness")
	}
}

func TestRestrictedMixingAcceptsOnStrictImprovement(t *testing.T) {
	length := 4
	z := testZobrist(length)
	rng := rand.New(rand.NewSource(9))
	pop := NewPopulation(length, 2, z, rng)
	cfg := RunConfig{L: length, N: 2, Oracle: oneMaxOracle{}}
	rc := newRunContext(cfg, z)

	zero := NewIndividual(length, z)
	pop.ReplaceAt(0, zero)

	mask := Mask{0, 1, 2}
	accepted, applied := RestrictedMixing(pop, 0, mask, rc)
	require.True(t, accepted)
	assert.Equal(t, Mask{0}, applied, "the first flip alone already strictly improves OneMax fitness, so the walk must stop extending there")
	assert.Equal(t, float64(1), pop.At(0).Evaluate(rc))
}

func TestRestrictedMixingUndoesOnStrictDecrease(t *testing.T) {
	length := 4
	z := testZobrist(length)
	rng := rand.New(rand.NewSource(10))
	pop := NewPopulation(length, 2, z, rng)
	cfg := RunConfig{L: length, N: 2, Oracle: oneMaxOracle{}}
	rc := newRunContext(cfg, z)

	allOnes := NewIndividual(length, z)
	for i := 0; i < length; i++ {
		allOnes.SetBit(i, 1)
	}
	pop.ReplaceAt(0, allOnes)

	mask := Mask{0, 1}
	accepted, applied := RestrictedMixing(pop, 0, mask, rc)
	assert.False(t, accepted)
	assert.Nil(t, applied)
	assert.Equal(t, float64(length), pop.At(0).Evaluate(rc), "a failed restricted mixing must leave the individual unchanged")
}

func TestRestrictedMixingEqualityRuleExtendsThroughPlateau(t *testing.T) {
	length := 3
	z := testZobrist(length)
	oracle := OracleFunc{
		Fn: func(ind *Individual) float64 {
			return float64(ind.GetBit(2))
		},
		Max: 1,
	}
	rng := rand.New(rand.NewSource(4))
	pop := NewPopulation(length, 2, z, rng)
	cfg := RunConfig{L: length, N: 2, Oracle: oracle}
	rc := newRunContext(cfg, z)

	zero := NewIndividual(length, z)
	pop.ReplaceAt(0, zero)

	mask := Mask{0, 1, 2}
	accepted, applied := RestrictedMixing(pop, 0, mask, rc)
	require.True(t, accepted)
	assert.Equal(t, Mask{0, 1, 2}, applied, "equal-fitness flips at positions 0 and 1 must be kept, not reverted, until position 2 strictly improves fitness")
	assert.Equal(t, float64(1), pop.At(0).Evaluate(rc))
}

func TestBackMixingGreedyOnlyAcceptsStrictImprovement(t *testing.T) {
	length := 4
	z := testZobrist(length)
	rng := rand.New(rand.NewSource(1))
	pop := NewPopulation(length, 2, z, rng)

	cfg := RunConfig{L: length, N: 2, Oracle: oneMaxOracle{}}
	rc := newRunContext(cfg, z)

	// Force a known state: source is all-ones, target is all-zeros.
	source := NewIndividual(length, z)
	for i := 0; i < length; i++ {
		source.SetBit(i, 1)
	}
	pop.ReplaceAt(0, source)

	target := NewIndividual(length, z)
	pop.ReplaceAt(1, target)

	mask := Mask{0, 1, 2, 3}
	accepted := BackMixing(pop, 0, mask, BackMixingGreedy, rc)
	require.Equal(t, 1, accepted)
	assert.Equal(t, float64(4), pop.At(1).Evaluate(rc))

	// Running it again is a no-op: target now equals source, so no bit
	// changes and BackMixing skips it (changed == false).
	accepted = BackMixing(pop, 0, mask, BackMixingGreedy, rc)
	assert.Equal(t, 0, accepted)
}
