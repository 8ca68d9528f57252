package problem

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
)

// SATClause is one disjunctive clause from a DIMACS CNF file: a list of
// signed literals (1-indexed, negative meaning the negated variable).
type SATClause []int

// SAT evaluates the fraction of satisfied clauses in a MAX-SAT sense:
// fitness is the number of clauses satisfied by the individual's bits
// (bit i-1 true means variable i is true) divided by the total clause
// count, so the global optimum is 1 whenever the instance is satisfiable.
type SAT struct {
	numVars int
	clauses []SATClause
}

func (s *SAT) Evaluate(ind *dsmga2.Individual) float64 {
	if len(s.clauses) == 0 {
		return 1
	}
	satisfied := 0
	for _, clause := range s.clauses {
		if clauseSatisfied(clause, ind) {
			satisfied++
		}
	}
	return float64(satisfied) / float64(len(s.clauses))
}

func clauseSatisfied(clause SATClause, ind *dsmga2.Individual) bool {
	for _, lit := range clause {
		v := lit
		negated := v < 0
		if negated {
			v = -v
		}
		bit := ind.GetBit(v - 1)
		if negated {
			bit = 1 - bit
		}
		if bit == 1 {
			return true
		}
	}
	return false
}

// MaxFitness returns 1 (every clause satisfied): the best any assignment
// can do, achieved exactly when the instance is satisfiable.
func (s *SAT) MaxFitness(int) float64 { return 1 }

// LoadSAT reads a DIMACS CNF file: comment lines starting with "c", a
// "p cnf numVars numClauses" problem line, then one clause per line (or
// spanning lines) of space-separated signed literals terminated by 0.
func LoadSAT(r io.Reader) (*SAT, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	s := &SAT{}
	var pending []int
	sawHeader := false

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, errors.New("problem: sat instance: malformed problem line")
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, errors.Wrap(err, "problem: sat instance: parsing numVars")
			}
			s.numVars = n
			sawHeader = true
			continue
		}
		if !sawHeader {
			return nil, errors.New("problem: sat instance: clause before problem line")
		}
		for _, f := range strings.Fields(line) {
			lit, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrap(err, "problem: sat instance: parsing literal")
			}
			if lit == 0 {
				s.clauses = append(s.clauses, SATClause(pending))
				pending = nil
				continue
			}
			pending = append(pending, lit)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "problem: sat instance: reading")
	}
	if !sawHeader {
		return nil, errors.New("problem: sat instance: missing problem line")
	}
	return s, nil
}
