package dsmga2

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/support/numeric"
	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/support/ratewindow"
)

// RunController owns one full DSMGA-II run: population, linkage structure,
// and termination bookkeeping. Construct with NewRunController and drive
// with Run; a controller is used for exactly one run and then discarded,
// mirroring the original source's Run::doit being a one-shot driver.
type RunController struct {
	cfg     RunConfig
	zobrist *ZobristTable
	rc      *runContext
	pop     *Population
	rng     *rand.Rand

	plateau     *ratewindow.Window
	steadyState *ratewindow.Window
	cliqueSize  int

	log *logrus.Entry
}

// NewRunController validates cfg and prepares a run. A ZobristTable is
// generated fresh from cfg.Seed unless z is non-nil, in which case it is
// reused as-is (e.g. loaded from a key file, so repeated runs compare the
// same bit-to-key mapping).
func NewRunController(cfg RunConfig, z *ZobristTable, log *logrus.Logger) (*RunController, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "dsmga2: invalid run config")
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if z == nil {
		z = NewZobristTable(cfg.L, rng)
	}

	if log == nil {
		log = logrus.New()
	}

	return &RunController{
		cfg:         cfg,
		zobrist:     z,
		rc:          newRunContext(cfg, z),
		rng:         rng,
		plateau:     ratewindow.New(),
		steadyState: ratewindow.New(),
		cliqueSize:  defaultCliqueSize(cfg.L),
		log:         log.WithField("component", "dsmga2.RunController"),
	}, nil
}

func defaultCliqueSize(l int) int {
	// A clique larger than the problem doesn't help and only slows mask
	// construction; half the string is a reasonable generic default that
	// the original source's parameter sweep treats as a tunable, not a
	// hard constant.
	return numeric.Max(l/2, 1)
}

// Run drives generations until an optimum is found, a budget is exhausted,
// the population plateaus, or ctx is cancelled. Cancellation is only
// observed at generation boundaries: no suspension point exists inside a
// generation's mixing passes, so a cancelled context still lets the
// in-flight generation finish cleanly.
func (r *RunController) Run(ctx context.Context) (RunResult, error) {
	runID := uuid.NewString()
	log := r.log.WithField("run_id", runID)

	r.pop = NewPopulation(r.cfg.L, r.cfg.N, r.zobrist, r.rng)

	gen := 0
	terminatedWhy := ""

loop:
	for {
		if err := ctx.Err(); err != nil {
			terminatedWhy = "cancelled"
			break loop
		}
		if r.rc.counters.Hit {
			terminatedWhy = "found_optimum"
			break loop
		}
		if r.cfg.MaxGen > 0 && gen >= r.cfg.MaxGen {
			terminatedWhy = "max_generations"
			break loop
		}
		if r.cfg.MaxFE > 0 && r.rc.counters.NFE+r.rc.counters.LSNFE >= r.cfg.MaxFE {
			terminatedWhy = "max_evaluations"
			break loop
		}

		r.runGeneration()
		gen++

		if r.rc.counters.Hit {
			terminatedWhy = "found_optimum"
			break loop
		}

		if r.pop.Converged() {
			terminatedWhy = "converged"
			break loop
		}

		bestIdx := r.pop.BestIndex(r.rc)
		bestFitness := r.pop.At(bestIdx).Evaluate(r.rc)
		r.plateau.Observe(bestFitness)
		if r.plateau.Exceeded(r.cfg.plateauGenerations()) {
			terminatedWhy = "plateau"
			break loop
		}

		r.steadyState.Observe(r.pop.MeanFitness(r.rc))
		if r.steadyState.Exceeded(r.cfg.steadyStateWindow()) {
			terminatedWhy = "steady_state"
			break loop
		}

		log.WithFields(logrus.Fields{
			"generation":   gen,
			"best_fitness": bestFitness,
			"nfe":          r.rc.counters.NFE,
			"lsnfe":        r.rc.counters.LSNFE,
		}).Debug("generation complete")
	}

	bestIdx := r.pop.BestIndex(r.rc)
	best := r.pop.At(bestIdx)

	result := RunResult{
		RunID:         runID,
		BestBits:      best.Bits(),
		BestFitness:   best.Evaluate(r.rc),
		Generations:   gen,
		NFE:           r.rc.counters.NFE,
		LSNFE:         r.rc.counters.LSNFE,
		HitNFE:        r.rc.counters.HitNFE,
		FoundOptimum:  r.rc.counters.Hit,
		TerminatedWhy: terminatedWhy,
	}
	log.WithFields(logrus.Fields{
		"terminated_why": terminatedWhy,
		"best_fitness":   result.BestFitness,
		"found_optimum":  result.FoundOptimum,
	}).Info("run complete")

	observeRunResult(result)
	return result, nil
}

// runGeneration performs one full pass per spec.md §4.7 steps 2-5: build
// the linkage graph from the population's FastCounting mirror (current
// since the previous generation's final rebuild), derive
// one clique mask per start position, then draw two independent random
// permutations, orderN over the population and orderELL over the start
// positions, and for each individual (in orderN order) try Restricted
// Mixing from each start position (in orderELL order) until the first
// success, triggering Back Mixing on whatever mask it accepted. Finally
// rebuild the FastCounting mirror so the next generation's linkage graph
// reflects this generation's changes.
func (r *RunController) runGeneration() {
	fc := r.pop.FastCounting()
	graph := BuildLinkageGraph(fc)
	masks := BuildMasks(graph, fc, r.cliqueSize)

	orderN := r.rng.Perm(r.pop.Size())
	orderELL := r.rng.Perm(len(masks))

	for _, i := range orderN {
		for _, s := range orderELL {
			accepted, mask := RestrictedMixing(r.pop, i, masks[s], r.rc)
			if accepted {
				BackMixing(r.pop, i, mask, r.backMixMode(), r.rc)
				break
			}
		}
	}

	r.pop.RebuildFastCounting()
}

// backMixMode picks Greedy Back Mixing by default, spec.md §4.7's stated
// default, switching to Exhaustive BM only under convergence pressure: a
// generation immediately following one that failed to improve the best
// individual (the plateau window's streak is nonzero). That is exactly
// the situation where a neutral, equal-fitness pattern is the only kind
// of move left to spread, so exhaustive (accept-on-equal) propagation is
// given a chance before the run is declared stalled.
func (r *RunController) backMixMode() BackMixingMode {
	if r.plateau.Streak() > 0 {
		return BackMixingExhaustive
	}
	return BackMixingGreedy
}
