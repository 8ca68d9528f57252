package dsmga2

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRunControllerFindsOneMaxOptimum(t *testing.T) {
	cfg := RunConfig{
		L:      20,
		N:      60,
		MaxGen: 200,
		Seed:   123,
		Oracle: oneMaxOracle{},
	}
	rc, err := NewRunController(cfg, nil, discardLogger())
	require.NoError(t, err)

	result, err := rc.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.FoundOptimum, "expected OneMax(L=20) to be solved within 200 generations")
	assert.Equal(t, float64(20), result.BestFitness)
	assert.Equal(t, "found_optimum", result.TerminatedWhy)
	assert.NotEmpty(t, result.RunID)
}

func TestRunControllerRespectsMaxGen(t *testing.T) {
	cfg := RunConfig{
		L:      50,
		N:      4,
		MaxGen: 1,
		Seed:   1,
		Oracle: oneMaxOracle{},
	}
	rc, err := NewRunController(cfg, nil, discardLogger())
	require.NoError(t, err)

	result, err := rc.Run(context.Background())
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Generations, 1)
}

func TestRunControllerRejectsInvalidConfig(t *testing.T) {
	_, err := NewRunController(RunConfig{L: 0, N: 10, Oracle: oneMaxOracle{}}, nil, discardLogger())
	assert.Error(t, err)

	_, err = NewRunController(RunConfig{L: 10, N: 10}, nil, discardLogger())
	assert.Error(t, err, "missing Oracle must be rejected")
}

func TestRunControllerHonorsCancellation(t *testing.T) {
	cfg := RunConfig{
		L:      100,
		N:      10,
		MaxGen: 1_000_000,
		Seed:   1,
		Oracle: oneMaxOracle{},
	}
	rc, err := NewRunController(cfg, nil, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := rc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", result.TerminatedWhy)
	assert.Equal(t, 0, result.Generations)
}
