// Package problem implements the built-in fitness oracles dsmga2 ships
// with, plus loaders for the external instance file formats (NK-Walsh,
// spin-glass, 3-SAT). Each oracle implements dsmga2.Oracle.
//
// Grounded on original_source/src/functions/fitness_functions.cpp for the
// trap-function constants and on Morenim-gom-opencl's deceptive_trap.go
// for the idiomatic Go shape of a trap-function evaluator (table lookup
// by ones-count rather than the original's branching).
package problem

import (
	"github.com/pkg/errors"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
)

// OneMax scores an individual by its number of 1 bits.
type OneMax struct{}

func (OneMax) Evaluate(ind *dsmga2.Individual) float64 {
	return float64(countOnes(ind))
}
func (OneMax) MaxFitness(length int) float64 { return float64(length) }

func countOnes(ind *dsmga2.Individual) int {
	n := 0
	for i := 0; i < ind.Length(); i++ {
		n += ind.GetBit(i)
	}
	return n
}

// trapBlockFitness is the classic K-bit trap function: fHigh at the
// all-ones block, otherwise fLow at the all-zeros block, scaled down
// linearly to 0 as the number of one bits grows to K-1, the textbook
// "deceptive" shape.
func trapBlockFitness(ones, k int, fHigh, fLow float64) float64 {
	if ones == k {
		return fHigh
	}
	return fLow * float64(k-1-ones) / float64(k-1)
}

// MKTrap is the additively decomposable K=5 trap function: the string is
// partitioned into non-overlapping blocks of 5, and a trap function is
// applied to each block's ones-count independently.
type MKTrap struct{}

const (
	mkTrapK     = 5
	mkTrapHigh  = 1.0
	mkTrapLow   = 0.8
	fTrapBlock  = 6
	cycTrapK    = 5
)

func (MKTrap) Evaluate(ind *dsmga2.Individual) float64 {
	var sum float64
	l := ind.Length()
	for start := 0; start+mkTrapK <= l; start += mkTrapK {
		ones := 0
		for i := 0; i < mkTrapK; i++ {
			ones += ind.GetBit(start + i)
		}
		sum += trapBlockFitness(ones, mkTrapK, mkTrapHigh, mkTrapLow)
	}
	return sum
}

func (MKTrap) MaxFitness(length int) float64 {
	return float64(length / mkTrapK)
}

// FTrap is the "folded trap" variant: blocks of 6, where the first half of
// the block uses fHigh/fLow one way and the second half the mirrored way,
// so that the block's optimum pattern isn't simply all-ones.
type FTrap struct{}

func (FTrap) Evaluate(ind *dsmga2.Individual) float64 {
	var sum float64
	l := ind.Length()
	half := fTrapBlock / 2
	for start := 0; start+fTrapBlock <= l; start += fTrapBlock {
		left := 0
		for i := 0; i < half; i++ {
			left += ind.GetBit(start + i)
		}
		right := 0
		for i := half; i < fTrapBlock; i++ {
			right += ind.GetBit(start + i)
		}
		sum += trapBlockFitness(left, half, mkTrapHigh, mkTrapLow)
		sum += trapBlockFitness(fTrapBlock-half-right, half, mkTrapHigh, mkTrapLow)
	}
	return sum
}

func (FTrap) MaxFitness(length int) float64 {
	return float64(length/fTrapBlock) * 2
}

// CycTrap is the cyclic K=5 trap: each block's window wraps around the end
// of the string back to position 0, so the decomposition is overlapping
// rather than partitioned.
type CycTrap struct{}

func (CycTrap) Evaluate(ind *dsmga2.Individual) float64 {
	var sum float64
	l := ind.Length()
	for start := 0; start < l; start++ {
		ones := 0
		for i := 0; i < cycTrapK; i++ {
			ones += ind.GetBit((start + i) % l)
		}
		sum += trapBlockFitness(ones, cycTrapK, mkTrapHigh, mkTrapLow)
	}
	return sum
}

// MaxFitness is length blocks each capped at fHigh.
func (CycTrap) MaxFitness(length int) float64 {
	return float64(length)
}

// ByName resolves one of the built-in fitness types by the CLI's string
// identifier (spec.md §6's fitnessType argument).
func ByName(name string) (dsmga2.Oracle, error) {
	switch name {
	case "onemax":
		return OneMax{}, nil
	case "mktrap":
		return MKTrap{}, nil
	case "ftrap":
		return FTrap{}, nil
	case "cyctrap":
		return CycTrap{}, nil
	default:
		return nil, errors.Errorf("problem: unknown fitness type %q", name)
	}
}
