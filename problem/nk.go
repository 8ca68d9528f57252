package problem

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
)

// NKSubfunction is one term of an NK-Walsh landscape: a subset of k
// positions and a lookup table of 2^k contributions, indexed by the
// subset's bits read as a little-endian integer.
type NKSubfunction struct {
	Positions []int
	Table     []float64
}

// NKWalsh is a sum of NKSubfunction terms, the standard NK-landscape
// fitness model (Kauffman's NK model expressed in Walsh-coefficient table
// form, per the instance file format the original source's NK loader
// reads).
type NKWalsh struct {
	length  int
	subFns  []NKSubfunction
	maxSum  float64
}

func (nk *NKWalsh) Evaluate(ind *dsmga2.Individual) float64 {
	var sum float64
	for _, sf := range nk.subFns {
		idx := 0
		for bitPos, pos := range sf.Positions {
			if ind.GetBit(pos) == 1 {
				idx |= 1 << uint(bitPos)
			}
		}
		sum += sf.Table[idx]
	}
	return sum
}

// MaxFitness returns the sum of each subfunction's own best table entry.
// Because subfunctions share positions, this is an upper bound on the
// true optimum, not necessarily achievable by any single bit vector; it
// is still useful as the foundOptima threshold is only ever compared
// against with >=, so a genuine optimum still gets caught.
func (nk *NKWalsh) MaxFitness(int) float64 { return nk.maxSum }

// LoadNKWalsh reads an NK-Walsh instance file:
//
//	line 1: L K
//	next L lines: k indices (the positions in this subfunction), then 2^k
//	table values, all whitespace separated
func LoadNKWalsh(r io.Reader) (*NKWalsh, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, errors.New("problem: nk instance: missing header line")
	}
	header := strings.Fields(sc.Text())
	if len(header) < 2 {
		return nil, errors.New("problem: nk instance: malformed header")
	}
	l, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, errors.Wrap(err, "problem: nk instance: parsing L")
	}
	k, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, errors.Wrap(err, "problem: nk instance: parsing K")
	}

	nk := &NKWalsh{length: l, subFns: make([]NKSubfunction, l)}
	tableSize := 1 << uint(k)
	for i := 0; i < l; i++ {
		if !sc.Scan() {
			return nil, errors.Errorf("problem: nk instance: missing subfunction line %d", i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != k+tableSize {
			return nil, errors.Errorf("problem: nk instance: subfunction %d has %d fields, want %d", i, len(fields), k+tableSize)
		}
		sf := NKSubfunction{Positions: make([]int, k), Table: make([]float64, tableSize)}
		for j := 0; j < k; j++ {
			p, err := strconv.Atoi(fields[j])
			if err != nil {
				return nil, errors.Wrapf(err, "problem: nk instance: subfunction %d position %d", i, j)
			}
			sf.Positions[j] = p
		}
		var blockMax float64
		for j := 0; j < tableSize; j++ {
			v, err := strconv.ParseFloat(fields[k+j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "problem: nk instance: subfunction %d table entry %d", i, j)
			}
			sf.Table[j] = v
			if j == 0 || v > blockMax {
				blockMax = v
			}
		}
		nk.subFns[i] = sf
		nk.maxSum += blockMax
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "problem: nk instance: reading")
	}
	return nk, nil
}
