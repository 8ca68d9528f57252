// Package dsmga2 implements the core of a Dependency-Structure-Matrix
// Genetic Algorithm, version 2 (DSMGA-II): a bit-string evolutionary
// optimizer that learns variable linkage online and drives Restricted
// Mixing and Back Mixing from the learned structure.
package dsmga2

import (
	"github.com/pkg/errors"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/support/numeric"
)

// Counters tracks fitness-evaluation budget and hit statistics for a single
// run. It replaces the original source's package-wide statics with an
// instance the run owns and threads through the core explicitly.
type Counters struct {
	NFE    int  // fitness evaluations charged to the oracle
	LSNFE  int  // evaluations charged to local search (GreedyHillClimb)
	HitNFE int  // NFE + LSNFE at which the optimum was first reached
	Hit    bool // whether the optimum has been reached this run
}

// RecordHit marks the optimum as found at the current evaluation count, if
// it has not already been recorded.
func (c *Counters) RecordHit() {
	if c.Hit {
		return
	}
	c.Hit = true
	c.HitNFE = c.NFE + c.LSNFE
}

// RunConfig is the configuration struct passed to NewRunController.
type RunConfig struct {
	L      int    // problem length (number of bits)
	N      int    // population size
	MaxGen int    // generation cap
	MaxFE  int    // evaluation cap; zero or negative disables the cap
	Seed   int64  // RNG seed; zero means "derive from current time"
	Oracle Oracle // fitness oracle (required)

	DisableCache bool // when true, skip the global fitness cache

	// PlateauGenerations bounds how many consecutive generations the
	// best fitness may fail to exceed its best value so far before the
	// run stops with reason "plateau". Zero selects a default.
	PlateauGenerations int

	// SteadyStateWindow bounds how many consecutive generations the
	// population's mean fitness may fail to exceed its best value so far
	// before the run stops with reason "steady_state". Zero selects a
	// default.
	SteadyStateWindow int
}

const (
	defaultPlateauGenerations = 50
	defaultSteadyStateWindow  = 20
)

func (c RunConfig) validate() error {
	if c.L <= 0 {
		return errors.Errorf("dsmga2: L must be positive, got %d", c.L)
	}
	if c.N <= 0 {
		return errors.Errorf("dsmga2: N must be positive, got %d", c.N)
	}
	if c.N < 2 {
		return errors.New("dsmga2: N must be at least 2 for tournament selection")
	}
	if c.Oracle == nil {
		return errors.New("dsmga2: Oracle is required")
	}
	return nil
}

func (c RunConfig) plateauGenerations() int {
	return numeric.OrDefault(c.PlateauGenerations, defaultPlateauGenerations)
}

func (c RunConfig) steadyStateWindow() int {
	return numeric.OrDefault(c.SteadyStateWindow, defaultSteadyStateWindow)
}

// RunResult is the output of a completed run.
type RunResult struct {
	RunID         string
	BestBits      []int
	BestFitness   float64
	Generations   int
	NFE           int
	LSNFE         int
	HitNFE        int
	FoundOptimum  bool
	TerminatedWhy string
}
