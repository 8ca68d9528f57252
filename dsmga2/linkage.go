package dsmga2

import "math"

// LinkageGraph is a dense, symmetric L x L matrix of pairwise mutual
// information between allele positions, computed from a population's
// current FastCounting matrix. The diagonal is always zero: a position
// carries no information about itself for clustering purposes.
type LinkageGraph struct {
	length int
	mi     [][]float64
}

// BuildLinkageGraph computes the full pairwise mutual-information matrix
// for the population currently loaded into fc. O(L^2 * N/64).
func BuildLinkageGraph(fc *FastCounting) *LinkageGraph {
	l := fc.Length()
	g := &LinkageGraph{length: l, mi: make([][]float64, l)}
	for i := range g.mi {
		g.mi[i] = make([]float64, l)
	}

	n := fc.PopSize()
	for i := 0; i < l; i++ {
		for j := i + 1; j < l; j++ {
			m := mutualInformation(fc, i, j, n)
			g.mi[i][j] = m
			g.mi[j][i] = m
		}
	}
	return g
}

// mutualInformation computes MI(i,j) from the 2x2 joint distribution of
// bits i and j across the population, in the same way the original
// source's computeMI derives it from n00/n01/n10/n11 popcounts.
func mutualInformation(fc *FastCounting, i, j, n int) float64 {
	if n == 0 {
		return 0
	}
	n11 := fc.CountOnesJoint(i, j)
	n1x := fc.CountOnes(i)
	nx1 := fc.CountOnes(j)
	n10 := n1x - n11
	n01 := nx1 - n11
	n00 := n - n1x - nx1 + n11

	total := float64(n)
	var mi float64
	mi += term(float64(n00), total, float64(n-n1x), float64(n-nx1))
	mi += term(float64(n01), total, float64(n-n1x), float64(nx1))
	mi += term(float64(n10), total, float64(n1x), float64(n-nx1))
	mi += term(float64(n11), total, float64(n1x), float64(nx1))
	if mi < 0 {
		// Floating point noise can push a true-zero MI slightly negative;
		// clamp rather than let it corrupt clique ordering's tie-breaks.
		mi = 0
	}
	return mi
}

// term computes one p(x,y) * log(p(x,y) / (p(x)*p(y))) summand, returning
// 0 for any cell with zero joint count (the standard 0*log(0) convention).
func term(nxy, total, nx, ny float64) float64 {
	if nxy <= 0 || nx <= 0 || ny <= 0 {
		return 0
	}
	pxy := nxy / total
	px := nx / total
	py := ny / total
	return pxy * math.Log(pxy/(px*py))
}

// MI returns the mutual information between positions i and j (i != j).
func (g *LinkageGraph) MI(i, j int) float64 { return g.mi[i][j] }

// Length returns the number of positions the graph covers.
func (g *LinkageGraph) Length() int { return g.length }

// Row returns the raw MI row for position i. Callers must not mutate it.
func (g *LinkageGraph) Row(i int) []float64 { return g.mi[i] }
