package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/permgroup/hcgt/domain"
	"github.com/permgroup/hcgt/internal/preset"
	"github.com/permgroup/hcgt/permutation"
)

// groupFlags are the flags shared by every subcommand that needs a
// generating set: either a named preset, or a literal domain plus cycle
// notation.
type groupFlags struct {
	preset string
	start  int
	fin    int
	gens   string
}

func (f *groupFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.preset, "preset", "", "named preset group (sym5, cyclic5, alt5, dihedral20)")
	flags.IntVar(&f.start, "start", 1, "domain start (ignored when --preset is set)")
	flags.IntVar(&f.fin, "fin", 5, "domain end, inclusive (ignored when --preset is set)")
	flags.StringVar(&f.gens, "gens", "", `generators as ";"-separated cycle notation, e.g. "(1 2 3)(4 5); (2 6)(3 5)"`)
}

func (f *groupFlags) resolve() (domain.Domain[int], []*permutation.Permutation[int], error) {
	if f.preset != "" {
		g, err := preset.Get(f.preset)
		if err != nil {
			return domain.Domain[int]{}, nil, err
		}

		return g.Domain, g.Gens, nil
	}

	dom, err := domain.New(f.start, f.fin)
	if err != nil {
		return domain.Domain[int]{}, nil, err
	}

	gens, err := parseGenerators(dom, f.gens)
	if err != nil {
		return domain.Domain[int]{}, nil, err
	}
	if len(gens) == 0 {
		return domain.Domain[int]{}, nil, fmt.Errorf("permgroupctl: no generators given (use --preset or --gens)")
	}

	return dom, gens, nil
}
