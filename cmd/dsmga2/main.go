// Command dsmga2 runs the DSMGA-II optimizer once (or repeatedly) against
// one of the built-in fitness functions and prints a summary, mirroring
// the original source's standalone `main.cpp` driver.
package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/problem"
	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/support/attestation"
)

func main() {
	log := logrus.New()
	root := newRunCmd(log)
	if err := root.Execute(); err != nil {
		log.WithError(err).Error("dsmga2 run failed")
		os.Exit(1)
	}
}

func newRunCmd(log *logrus.Logger) *cobra.Command {
	var display bool
	var instance string
	var attest bool

	cmd := &cobra.Command{
		Use:   "run <L> <N> <fitnessType> <maxGen> <maxFe> <repeats> <display> <seed>",
		Short: "Run DSMGA-II against a built-in or instance-file fitness function",
		Args:  cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseRunArgs(args)
			if err != nil {
				return err
			}
			return runRepeats(cmd.Context(), log, params, display, instance, attest)
		},
	}
	cmd.Flags().BoolVar(&display, "verbose-display", false, "print a summary line for every repeat, as a nonzero <display> does")
	cmd.Flags().StringVar(&instance, "instance", "", "instance file path, required for fitnessType nk/spinglass/sat")
	cmd.Flags().BoolVar(&attest, "attest", false, "sign the final repeat's result with a freshly generated ed25519 key and print the signature")
	return cmd
}

type runArgs struct {
	l, n, maxGen, maxFE, repeats int
	fitnessType                  string
	display                      bool
	seed                         int64
}

func parseRunArgs(args []string) (runArgs, error) {
	var p runArgs
	var err error
	if p.l, err = strconv.Atoi(args[0]); err != nil {
		return p, errors.Wrap(err, "parsing L")
	}
	if p.n, err = strconv.Atoi(args[1]); err != nil {
		return p, errors.Wrap(err, "parsing N")
	}
	p.fitnessType = args[2]
	if p.maxGen, err = strconv.Atoi(args[3]); err != nil {
		return p, errors.Wrap(err, "parsing maxGen")
	}
	if p.maxFE, err = strconv.Atoi(args[4]); err != nil {
		return p, errors.Wrap(err, "parsing maxFe")
	}
	if p.repeats, err = strconv.Atoi(args[5]); err != nil {
		return p, errors.Wrap(err, "parsing repeats")
	}
	displayInt, err := strconv.Atoi(args[6])
	if err != nil {
		return p, errors.Wrap(err, "parsing display")
	}
	p.display = displayInt != 0
	if p.seed, err = strconv.ParseInt(args[7], 10, 64); err != nil {
		return p, errors.Wrap(err, "parsing seed")
	}
	return p, nil
}

func runRepeats(ctx context.Context, log *logrus.Logger, p runArgs, verboseDisplay bool, instance string, attest bool) error {
	oracle, err := problem.LoadOracle(p.fitnessType, instance)
	if err != nil {
		return err
	}

	numSuccess := 0
	totalNFE := 0
	var lastResult dsmga2.RunResult
	for r := 0; r < p.repeats; r++ {
		seed := p.seed
		if seed != 0 {
			seed += int64(r)
		}
		cfg := dsmga2.RunConfig{
			L:      p.l,
			N:      p.n,
			MaxGen: p.maxGen,
			MaxFE:  p.maxFE,
			Seed:   seed,
			Oracle: oracle,
		}
		rc, err := dsmga2.NewRunController(cfg, nil, log)
		if err != nil {
			return errors.Wrapf(err, "repeat %d", r)
		}
		result, err := rc.Run(ctx)
		if err != nil {
			return errors.Wrapf(err, "repeat %d", r)
		}
		if p.display || verboseDisplay {
			fmt.Printf("repeat %d: found=%v fitness=%.4f gen=%d nfe=%d lsnfe=%d terminated=%s\n",
				r, result.FoundOptimum, result.BestFitness, result.Generations,
				result.NFE, result.LSNFE, result.TerminatedWhy)
		}
		if result.FoundOptimum {
			numSuccess++
			totalNFE += result.HitNFE
		}
		lastResult = result
	}

	fmt.Printf("success rate: %d/%d\n", numSuccess, p.repeats)
	if numSuccess > 0 {
		fmt.Printf("avg hitnfe (successful runs): %.2f\n", float64(totalNFE)/float64(numSuccess))
	}

	if attest {
		if err := printAttestation(lastResult); err != nil {
			return err
		}
	}
	return nil
}

func printAttestation(result dsmga2.RunResult) error {
	pub, priv, err := attestation.GenerateKey()
	if err != nil {
		return err
	}
	att, err := attestation.Sign(priv, result)
	if err != nil {
		return err
	}
	fmt.Printf("attestation public key: %s\n", base64.StdEncoding.EncodeToString(pub))
	fmt.Printf("attestation signature:  %s\n", base64.StdEncoding.EncodeToString(att.Signature))
	return nil
}
