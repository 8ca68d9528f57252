package dsmga2

import "sync"

// Oracle is a pluggable maximization function over bit vectors. It must be
// total, deterministic, and free of side effects beyond file I/O performed
// at construction time: the core calls Evaluate as often as it likes and
// assumes two calls with the same bits return the same score.
type Oracle interface {
	// Evaluate scores ind. The core increments the run's NFE counter
	// itself around real (non-cached) calls; Evaluate must not do so.
	Evaluate(ind *Individual) float64

	// MaxFitness returns the known (or assumed) global optimum for a
	// problem of this length, used for the foundOptima termination check.
	MaxFitness(length int) float64
}

// OracleFunc adapts a plain function to the Oracle interface for the
// CUSTOM variant (spec.md §9: "the custom variant must accept a
// caller-supplied closure").
type OracleFunc struct {
	Fn  func(ind *Individual) float64
	Max float64
}

func (f OracleFunc) Evaluate(ind *Individual) float64 { return f.Fn(ind) }
func (f OracleFunc) MaxFitness(int) float64           { return f.Max }

// FitnessCache is a global (per-run) mapping from Zobrist key to fitness.
// Collisions are accepted as negligible: Z is 64-bit uniform random and no
// collision detection is performed, matching spec.md §3.
type FitnessCache struct {
	mu sync.RWMutex
	m  map[uint64]float64
}

// NewFitnessCache returns an empty cache. The run is single-threaded per
// spec.md §5, but the cache is guarded by a RWMutex anyway so a caller
// that chooses to parallelize independent evaluations (spec.md §5's
// escape hatch) only has to swap the NFE counter for an atomic one.
func NewFitnessCache() *FitnessCache {
	return &FitnessCache{m: make(map[uint64]float64)}
}

func (c *FitnessCache) get(key uint64) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *FitnessCache) put(key uint64, fitness float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = fitness
}

// Len reports the number of distinct Zobrist keys cached.
func (c *FitnessCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// runContext bundles the per-run state every Individual operation needs:
// configuration, counters, and the fitness cache. Introduced per spec.md
// §9's redesign guidance in place of the original source's package-wide
// statics.
type runContext struct {
	cfg      RunConfig
	counters *Counters
	cache    *FitnessCache
	zobrist  *ZobristTable
}

func newRunContext(cfg RunConfig, zobrist *ZobristTable) *runContext {
	return &runContext{
		cfg:      cfg,
		counters: &Counters{},
		cache:    NewFitnessCache(),
		zobrist:  zobrist,
	}
}
