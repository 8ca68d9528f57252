package problem

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
)

// SpinGlassBond is one coupling term J_ij between two spins, read from an
// instance file's adjacency list.
type SpinGlassBond struct {
	I, J   int
	Weight float64
}

// SpinGlass evaluates the negated Ising Hamiltonian H = -sum(J_ij * s_i *
// s_j) over spins s in {-1, +1} derived from each individual's bits (bit 0
// maps to spin -1, bit 1 to spin +1), so that maximizing fitness
// minimizes energy, per the original source's spin-glass instance loader.
type SpinGlass struct {
	length int
	bonds  []SpinGlassBond
	maxSum float64
}

func spinOf(bit int) float64 {
	if bit == 1 {
		return 1
	}
	return -1
}

func (sg *SpinGlass) Evaluate(ind *dsmga2.Individual) float64 {
	var sum float64
	for _, b := range sg.bonds {
		sum += b.Weight * spinOf(ind.GetBit(b.I)) * spinOf(ind.GetBit(b.J))
	}
	return sum
}

// MaxFitness returns the sum of |J_ij| across all bonds, the best possible
// energy if every bond could be satisfied simultaneously. Frustrated
// instances will never reach it; it still serves as a safe >= threshold.
func (sg *SpinGlass) MaxFitness(int) float64 { return sg.maxSum }

// LoadSpinGlass reads a spin-glass instance file:
//
//	line 1: L numBonds
//	next numBonds lines: i j weight
func LoadSpinGlass(r io.Reader) (*SpinGlass, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, errors.New("problem: spinglass instance: missing header line")
	}
	header := strings.Fields(sc.Text())
	if len(header) < 2 {
		return nil, errors.New("problem: spinglass instance: malformed header")
	}
	l, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, errors.Wrap(err, "problem: spinglass instance: parsing L")
	}
	numBonds, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, errors.Wrap(err, "problem: spinglass instance: parsing bond count")
	}

	sg := &SpinGlass{length: l, bonds: make([]SpinGlassBond, numBonds)}
	for n := 0; n < numBonds; n++ {
		if !sc.Scan() {
			return nil, errors.Errorf("problem: spinglass instance: missing bond line %d", n)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 3 {
			return nil, errors.Errorf("problem: spinglass instance: bond %d malformed", n)
		}
		i, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "problem: spinglass instance: bond %d i", n)
		}
		j, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "problem: spinglass instance: bond %d j", n)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "problem: spinglass instance: bond %d weight", n)
		}
		sg.bonds[n] = SpinGlassBond{I: i, J: j, Weight: w}
		if w < 0 {
			w = -w
		}
		sg.maxSum += w
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "problem: spinglass instance: reading")
	}
	return sg, nil
}
