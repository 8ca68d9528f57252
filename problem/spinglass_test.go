package problem

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
)

func TestLoadSpinGlassEvaluate(t *testing.T) {
	// One ferromagnetic bond between spins 0 and 1, weight 1.0: aligned
	// spins (both 0 -> -1,-1, or both 1 -> +1,+1) maximize fitness.
	instance := "2 1\n0 1 1.0\n"

	sg, err := LoadSpinGlass(strings.NewReader(instance))
	require.NoError(t, err)

	z := dsmga2.NewZobristTable(2, rand.New(rand.NewSource(1)))

	aligned := dsmga2.NewIndividual(2, z)
	aligned.SetBit(0, 1)
	aligned.SetBit(1, 1)
	assert.Equal(t, 1.0, sg.Evaluate(aligned))

	frustrated := dsmga2.NewIndividual(2, z)
	frustrated.SetBit(0, 1)
	frustrated.SetBit(1, 0)
	assert.Equal(t, -1.0, sg.Evaluate(frustrated))

	assert.Equal(t, 1.0, sg.MaxFitness(2))
}

func TestLoadSpinGlassRejectsMalformedBond(t *testing.T) {
	_, err := LoadSpinGlass(strings.NewReader("2 1\nnot a bond\n"))
	assert.Error(t, err)
}
