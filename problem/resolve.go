package problem

import (
	"os"

	"github.com/pkg/errors"

	"github.com/PoHsuanLai/DSMGA-II-TwoEdge/dsmga2"
)

// LoadOracle resolves the CLI's fitnessType argument to a concrete Oracle.
// The built-in types (onemax, mktrap, ftrap, cyctrap) need no instance
// file; nk, spinglass, and sat require one, read from instancePath.
func LoadOracle(fitnessType, instancePath string) (dsmga2.Oracle, error) {
	switch fitnessType {
	case "onemax", "mktrap", "ftrap", "cyctrap":
		return ByName(fitnessType)
	case "nk":
		f, err := openInstance(fitnessType, instancePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadNKWalsh(f)
	case "spinglass":
		f, err := openInstance(fitnessType, instancePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadSpinGlass(f)
	case "sat":
		f, err := openInstance(fitnessType, instancePath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadSAT(f)
	default:
		return nil, errors.Errorf("problem: unknown fitness type %q", fitnessType)
	}
}

func openInstance(fitnessType, instancePath string) (*os.File, error) {
	if instancePath == "" {
		return nil, errors.Errorf("problem: fitness type %q requires --instance", fitnessType)
	}
	f, err := os.Open(instancePath)
	if err != nil {
		return nil, errors.Wrapf(err, "problem: opening instance file for %q", fitnessType)
	}
	return f, nil
}
