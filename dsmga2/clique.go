package dsmga2

import "container/heap"

// Mask is an ordered list of allele positions that the mixing engine treats
// as one linkage group: RM flips a mask's positions one at a time, in order,
// and accepts a prefix of it; BM then copies that accepted prefix's bits as
// a unit.
type Mask []int

// BuildMasks derives one mask per position from the linkage graph: mask[i]
// is the clique grown outward from position i by repeatedly adding
// whichever remaining position has the highest summed linkage to the set
// selected so far, stopping once the set reaches size. This mirrors the
// original source's buildGraph/findClique greedy clustering, rebuilt
// per-generation from scratch rather than maintained incrementally, which
// spec.md leaves as an explicit accepted simplification. fc supplies the
// countOne tie-break spec.md §4.6 requires when two candidates' linkage
// sums are exactly equal.
func BuildMasks(g *LinkageGraph, fc *FastCounting, size int) []Mask {
	l := g.Length()
	if size > l {
		size = l
	}
	masks := make([]Mask, l)
	for i := 0; i < l; i++ {
		masks[i] = growClique(g, fc, i, size)
	}
	return masks
}

// growClique grows a single clique seeded at `seed`, using a max-heap of
// candidates keyed by summed linkage to the already-selected set, breaking
// ties first by the candidate's countOne (from fc, higher wins) and then by
// ascending position index, per spec.md §4.6, so the result is
// deterministic for a fixed graph, counting matrix, and seed.
func growClique(g *LinkageGraph, fc *FastCounting, seed, size int) Mask {
	l := g.Length()
	selected := make([]bool, l)
	mask := make(Mask, 0, size)

	mask = append(mask, seed)
	selected[seed] = true

	pq := &cliqueHeap{}
	heap.Init(pq)
	for j := 0; j < l; j++ {
		if j == seed {
			continue
		}
		heap.Push(pq, cliqueCandidate{pos: j, score: g.MI(seed, j), ones: fc.CountOnes(j)})
	}

	for len(mask) < size && pq.Len() > 0 {
		cand := heap.Pop(pq).(cliqueCandidate)
		if selected[cand.pos] {
			continue
		}
		// Heap scores are refreshed after every selection (below), so the
		// popped score equals the candidate's summed linkage to mask. The
		// recomputation is a guard: a candidate whose score no longer holds
		// the top spot is pushed back instead of being selected.
		fresh := sumLinkage(g, cand.pos, mask)
		if pq.Len() > 0 && fresh < pq.peekScore() {
			heap.Push(pq, cliqueCandidate{pos: cand.pos, score: fresh, ones: cand.ones})
			continue
		}
		selected[cand.pos] = true
		mask = append(mask, cand.pos)

		// Every remaining candidate's summed linkage grows by its MI to the
		// newly selected position; add it and restore heap order.
		for idx := range *pq {
			(*pq)[idx].score += g.MI((*pq)[idx].pos, cand.pos)
		}
		heap.Init(pq)
	}
	return mask
}

func sumLinkage(g *LinkageGraph, pos int, mask Mask) float64 {
	var sum float64
	for _, m := range mask {
		sum += g.MI(pos, m)
	}
	return sum
}

type cliqueCandidate struct {
	pos   int
	score float64
	ones  int
}

// cliqueHeap is a max-heap on score, breaking ties first on the greater
// countOne (the candidate's FastCounting column popcount) and then on
// ascending position index, matching spec.md §4.6's two-level tie-break.
type cliqueHeap []cliqueCandidate

func (h cliqueHeap) Len() int { return len(h) }
func (h cliqueHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	if h[i].ones != h[j].ones {
		return h[i].ones > h[j].ones
	}
	return h[i].pos < h[j].pos
}
func (h cliqueHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *cliqueHeap) Push(x interface{}) {
	*h = append(*h, x.(cliqueCandidate))
}
func (h *cliqueHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
func (h cliqueHeap) peekScore() float64 { return h[0].score }
