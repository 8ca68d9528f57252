package dsmga2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkageGraphSymmetricAndNonNegative(t *testing.T) {
	length, n := 10, 30
	pop := buildTestPopulation(t, length, n)

	fc := NewFastCounting(length, n)
	fc.Build(pop)
	g := BuildLinkageGraph(fc)

	for i := 0; i < length; i++ {
		assert.Equal(t, float64(0), g.MI(i, i))
		for j := 0; j < length; j++ {
			assert.GreaterOrEqual(t, g.MI(i, j), float64(0))
			assert.InDelta(t, g.MI(i, j), g.MI(j, i), 1e-12)
		}
	}
}

func TestLinkageGraphZeroForConstantColumn(t *testing.T) {
	length, n := 6, 16
	z := testZobrist(length)
	pop := make([]*Individual, n)
	for i := range pop {
		pop[i] = NewIndividual(length, z)
		// Every individual identical except one varying bit: position 0
		// is constant (always 0) and must carry zero information.
		if i%2 == 1 {
			pop[i].SetBit(1, 1)
		}
	}

	fc := NewFastCounting(length, n)
	fc.Build(pop)
	g := BuildLinkageGraph(fc)

	for j := 1; j < length; j++ {
		assert.Equal(t, float64(0), g.MI(0, j), "constant column must have zero mutual information")
	}
}
