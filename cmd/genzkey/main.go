// Command genzkey writes a Zobrist key file that dsmga2.LoadZobristTable
// reads, so runs that pass the loaded table to NewRunController share the
// same bit-to-key mapping. The dsmga2 command has no option to load such a
// file; it generates a fresh table for every run. Mirrors the original
// source's standalone genZobrist.cpp utility.
package main

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
)

func main() {
	if err := newGenZKeyCmd().Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func newGenZKeyCmd() *cobra.Command {
	var count int
	var seed int64

	cmd := &cobra.Command{
		Use:   "genzkey <path>",
		Short: "Generate a Zobrist key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if count <= 0 {
				return errors.New("genzkey: --count must be positive")
			}
			if count > dsmga2.MaxZobristLength {
				return errors.Errorf("genzkey: --count %d exceeds the maximum key table length %d", count, dsmga2.MaxZobristLength)
			}
			s := seed
			if s == 0 {
				s = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(s))
			z := dsmga2.NewZobristTable(count, rng)

			f, err := os.Create(path)
			if err != nil {
				return errors.Wrap(err, "genzkey: creating output file")
			}
			defer f.Close()

			if err := dsmga2.SaveZobristTable(f, z); err != nil {
				return err
			}
			cmd.Printf("wrote %d keys to %s (seed=%s)\n", count, path, strconv.FormatInt(s, 10))
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 1000, "number of Zobrist keys to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed; 0 derives one from the current time")
	return cmd
}
