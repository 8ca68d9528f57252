package dsmga2

import "math/bits"

// FastCounting stores a population transposed into bit-column-major order:
// for each allele position i, a packed bit-vector across all N individuals
// records who carries a 1 there. Linkage computation needs the joint
// popcount of every pair of positions, so a row-major (individual-major)
// layout would require an O(N) scan per pair; the transposed layout turns
// each such scan into a handful of AND + POPCOUNT instructions over
// ceil(N/64) words instead, the same trick the original source's
// FastCounting class uses.
type FastCounting struct {
	length   int
	popSize  int
	numWords int

	// ones[i] holds the packed bit-vector of "individual j has a 1 at
	// position i", one bit per individual, LSB-first within each word.
	ones [][]uint64
}

// NewFastCounting allocates a FastCounting for a population of popSize
// individuals of the given length. Call Build before reading
// any counts.
func NewFastCounting(length, popSize int) *FastCounting {
	numWords := quotientWord(popSize-1) + 1
	fc := &FastCounting{
		length:   length,
		popSize:  popSize,
		numWords: numWords,
		ones:     make([][]uint64, length),
	}
	for i := range fc.ones {
		fc.ones[i] = make([]uint64, numWords)
	}
	return fc
}

// Build rewrites the whole transposed matrix from the current state of
// pop. pop must have exactly fc.popSize individuals of fc.length bits.
func (fc *FastCounting) Build(pop []*Individual) {
	for i := 0; i < fc.length; i++ {
		row := fc.ones[i]
		for w := range row {
			row[w] = 0
		}
		for j, ind := range pop {
			if ind.GetBit(i) == 1 {
				row[quotientWord(j)] |= 1 << uint(remainderWord(j))
			}
		}
	}
}

// UpdateIndividual re-derives the column bits for a single population slot
// j after ind at that slot changed, without rebuilding the whole matrix.
// Used when the mixing engine replaces one individual in place.
func (fc *FastCounting) UpdateIndividual(j int, ind *Individual) {
	q, r := quotientWord(j), remainderWord(j)
	mask := uint64(1) << uint(r)
	for i := 0; i < fc.length; i++ {
		if ind.GetBit(i) == 1 {
			fc.ones[i][q] |= mask
		} else {
			fc.ones[i][q] &^= mask
		}
	}
}

// CountOnes returns the number of individuals with a 1 at position i.
func (fc *FastCounting) CountOnes(i int) int {
	n := 0
	for _, w := range fc.ones[i] {
		n += bits.OnesCount64(w)
	}
	return n
}

// CountOnesJoint returns the number of individuals that have a 1 at both
// position i and position j ("n11" in the 2x2 contingency table linkage.go
// builds from these counts).
func (fc *FastCounting) CountOnesJoint(i, j int) int {
	a, b := fc.ones[i], fc.ones[j]
	n := 0
	for w := range a {
		n += bits.OnesCount64(a[w] & b[w])
	}
	return n
}

// PopSize and Length expose the matrix's fixed dimensions.
func (fc *FastCounting) PopSize() int { return fc.popSize }
func (fc *FastCounting) Length() int  { return fc.length }
