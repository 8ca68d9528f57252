package dsmga2

import (
	"math/rand"
	"sync"
)

// Population owns the run's live individuals and its FastCounting mirror,
// plus the single *rand.Rand every stochastic operation draws from. The RNG
// is guarded by its own mutex rather than embedded lock-free, following the
// teacher's pattern of a dedicated mutex around a shared *rand.Rand instead
// of a per-goroutine source: spec.md's single-threaded core never contends
// on it, but keeping the guard means a future parallel mixing pass (the
// escape hatch spec.md §5 leaves open) does not need to touch this type.
type Population struct {
	inds []*Individual
	fc   *FastCounting

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewPopulation allocates N random individuals of the given length and
// builds their FastCounting mirror.
func NewPopulation(length, n int, z *ZobristTable, rng *rand.Rand) *Population {
	p := &Population{
		inds: make([]*Individual, n),
		rng:  rng,
	}
	for i := range p.inds {
		p.inds[i] = NewRandomIndividual(length, z, rng)
	}
	p.fc = NewFastCounting(length, n)
	p.fc.Build(p.inds)
	return p
}

// Size returns the population's fixed count of individuals.
func (p *Population) Size() int { return len(p.inds) }

// At returns the individual at slot i.
func (p *Population) At(i int) *Individual { return p.inds[i] }

// FastCounting returns the population's current bit-column mirror.
func (p *Population) FastCounting() *FastCounting { return p.fc }

// ReplaceAt overwrites slot i with ind's bits and updates the FastCounting
// mirror for that slot. Used by the mixing engine when it accepts an
// offspring in place of its parent.
func (p *Population) ReplaceAt(i int, ind *Individual) {
	p.inds[i].CopyFrom(ind)
	p.fc.UpdateIndividual(i, p.inds[i])
}

// RebuildFastCounting recomputes the whole FastCounting matrix from the
// current individuals. Called once per generation after RM/BM has finished
// mutating the population in place; ReplaceAt already keeps the mirror
// current slot by slot, and this full rebuild re-derives every column from
// scratch before the next generation's linkage graph is built.
func (p *Population) RebuildFastCounting() {
	p.fc.Build(p.inds)
}

// intn draws a uniform int in [0, n) using the population's guarded RNG.
func (p *Population) intn(n int) int {
	p.rngMu.Lock()
	defer p.rngMu.Unlock()
	return p.rng.Intn(n)
}

// TournamentSelect runs a size-s tournament and returns the winner's
// population index (highest Evaluate, ties broken by whoever was drawn
// first). Contestants are drawn from successive random permutations of the
// population, so every index is drawn once before any index repeats; a
// tournament with s >= Size() therefore always includes the fittest
// individual.
func (p *Population) TournamentSelect(s int, rc *runContext) int {
	if s < 1 {
		s = 1
	}
	p.rngMu.Lock()
	perm := p.rng.Perm(p.Size())
	p.rngMu.Unlock()
	best := perm[0]
	bestFitness := p.inds[best].Evaluate(rc)
	for k := 1; k < s; k++ {
		if k%len(perm) == 0 {
			p.rngMu.Lock()
			perm = p.rng.Perm(p.Size())
			p.rngMu.Unlock()
		}
		cand := perm[k%len(perm)]
		f := p.inds[cand].Evaluate(rc)
		if f > bestFitness {
			best = cand
			bestFitness = f
		}
	}
	return best
}

// Converged reports whether every individual shares the same Zobrist key,
// i.e. the population has collapsed onto a single genotype and further
// mixing cannot change it.
func (p *Population) Converged() bool {
	if len(p.inds) == 0 {
		return true
	}
	key := p.inds[0].Key()
	for _, ind := range p.inds[1:] {
		if ind.Key() != key {
			return false
		}
	}
	return true
}

// MeanFitness returns the population's average fitness under rc.
func (p *Population) MeanFitness(rc *runContext) float64 {
	sum := 0.0
	for _, ind := range p.inds {
		sum += ind.Evaluate(rc)
	}
	return sum / float64(len(p.inds))
}

// BestIndex returns the index of the population's fittest individual.
func (p *Population) BestIndex(rc *runContext) int {
	best := 0
	bestFitness := p.inds[0].Evaluate(rc)
	for i := 1; i < len(p.inds); i++ {
		f := p.inds[i].Evaluate(rc)
		if f > bestFitness {
			best = i
			bestFitness = f
		}
	}
	return best
}
