package problem

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
)

func TestLoadSATEvaluate(t *testing.T) {
	instance := "c a trivial 2-clause instance\n" +
		"p cnf 2 2\n" +
		"1 2 0\n" +
		"-1 -2 0\n"

	sat, err := LoadSAT(strings.NewReader(instance))
	require.NoError(t, err)

	z := dsmga2.NewZobristTable(2, rand.New(rand.NewSource(1)))

	// Both vars true: clause 1 (x1 v x2) satisfied, clause 2 (~x1 v ~x2) not.
	ind := dsmga2.NewIndividual(2, z)
	ind.SetBit(0, 1)
	ind.SetBit(1, 1)
	assert.Equal(t, 0.5, sat.Evaluate(ind))
	assert.Equal(t, 1.0, sat.MaxFitness(2))

	// x1 true, x2 false satisfies both clauses.
	both := dsmga2.NewIndividual(2, z)
	both.SetBit(0, 1)
	both.SetBit(1, 0)
	assert.Equal(t, 1.0, sat.Evaluate(both))
}

func TestLoadSATRejectsMissingProblemLine(t *testing.T) {
	_, err := LoadSAT(strings.NewReader("1 2 0\n"))
	assert.Error(t, err)
}
