package dsmga2

import (
	"math/rand"

	"github.com/pkg/errors"
)

// MaxZobristLength is the largest key count the genzkey command writes,
// the original source's KEY_SIZE of 1000. NewZobristTable does not enforce
// it: a table generated in process is sized to whatever n it is given.
const MaxZobristLength = 1000

// ZobristTable is a read-only, fixed table of uniformly random 64-bit
// words indexed by bit position. It is loaded once per process (or per
// test) and shared across every Individual a run creates: XORing the
// words for the set bits of a bit-vector gives an incremental identity
// hash, which is what makes the fitness cache O(1) per evaluation.
type ZobristTable struct {
	words []uint64
}

// NewZobristTable builds a table of n uniformly random 64-bit words using
// the supplied RNG. Used by tests, the genzkey tool, and NewRunController
// when it is given no table; runs that
// care about reproducibility across processes should load a persisted
// table with LoadZobristTable instead, since a fresh *rand.Rand here will
// not reproduce a key file written by a different run.
func NewZobristTable(n int, rng *rand.Rand) *ZobristTable {
	words := make([]uint64, n)
	for i := range words {
		words[i] = rng.Uint64()
	}
	return &ZobristTable{words: words}
}

// NewZobristTableFromWords wraps an already-generated slice of words
// (e.g. one decoded by support/zobristcodec) without copying.
func NewZobristTableFromWords(words []uint64) (*ZobristTable, error) {
	if len(words) == 0 {
		return nil, errors.New("dsmga2: zobrist table must have at least one word")
	}
	return &ZobristTable{words: words}, nil
}

// Len reports how many bit positions this table can key.
func (z *ZobristTable) Len() int {
	return len(z.words)
}

// At returns the Zobrist word for bit position i. It panics if i is out of
// range: an out-of-range Zobrist lookup is an internal invariant violation
// (an Individual longer than the table), never a condition valid input can
// trigger.
func (z *ZobristTable) At(i int) uint64 {
	if i < 0 || i >= len(z.words) {
		panic(errors.Errorf("dsmga2: zobrist index %d out of range [0,%d)", i, len(z.words)))
	}
	return z.words[i]
}
