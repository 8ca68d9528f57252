package dsmga2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOracleFuncAdapts(t *testing.T) {
	calls := 0
	o := OracleFunc{
		Fn: func(ind *Individual) float64 {
			calls++
			return float64(ind.countOnesInWords())
		},
		Max: 4,
	}

	z := testZobrist(4)
	ind := NewIndividual(4, z)
	ind.SetBit(0, 1)
	ind.SetBit(1, 1)

	assert.Equal(t, float64(2), o.Evaluate(ind))
	assert.Equal(t, 1, calls)
	assert.Equal(t, float64(4), o.MaxFitness(4))
}

func TestFitnessCacheGetPut(t *testing.T) {
	c := NewFitnessCache()
	_, ok := c.get(42)
	assert.False(t, ok)

	c.put(42, 3.5)
	v, ok := c.get(42)
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)
	assert.Equal(t, 1, c.Len())
}

func TestEvaluateUsesCacheAcrossIndividuals(t *testing.T) {
	z := testZobrist(4)
	calls := 0
	cfg := RunConfig{L: 4, N: 2, Oracle: OracleFunc{
		Fn: func(ind *Individual) float64 {
			calls++
			return float64(ind.countOnesInWords())
		},
		Max: 4,
	}}
	rc := newRunContext(cfg, z)

	a := NewIndividual(4, z)
	a.SetBit(0, 1)
	b := NewIndividual(4, z)
	b.SetBit(0, 1)

	assert.Equal(t, a.Evaluate(rc), b.Evaluate(rc))
	assert.Equal(t, 1, calls, "two individuals with the same key must share one oracle call")
}
