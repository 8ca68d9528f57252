package dsmga2

import (
	"io"

	"github.com/pkg/errors"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/support/zobristcodec"
)

// LoadZobristTable reads a Zobrist key file written by SaveZobristTable
// (or by the genzkey command) and returns the table it describes. Must be
// called before any Individual using that table is constructed.
func LoadZobristTable(r io.Reader) (*ZobristTable, error) {
	words, err := zobristcodec.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "dsmga2: loading zobrist key file")
	}
	return NewZobristTableFromWords(words)
}

// SaveZobristTable persists a table so a later run can reproduce the same
// Zobrist keys via LoadZobristTable.
func SaveZobristTable(w io.Writer, z *ZobristTable) error {
	return errors.Wrap(zobristcodec.Encode(w, z.words), "dsmga2: writing zobrist key file")
}
