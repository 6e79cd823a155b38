package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/permgroup/hcgt/bsgs"
	"github.com/permgroup/hcgt/orbit"
)

func (a *App) newSimsCmd() *cobra.Command {
	gf := &groupFlags{}
	var schreier bool

	cmd := &cobra.Command{
		Use:   "sims",
		Short: "Run Schreier-Sims and dump the resulting base and orbit sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			dom, gens, err := gf.resolve()
			if err != nil {
				return err
			}

			factory := orbit.DirectFactory[int]
			if schreier {
				factory = orbit.SchreierFactory[int]
			}

			b, err := bsgs.SchreierSims(dom, gens, factory)
			if err != nil {
				return err
			}

			product := 1
			for i, beta := range b.Base {
				fmt.Fprintf(a.stdout, "level %d: base=%d |S|=%d |orbit|=%d\n", i, beta, len(b.Gens[i]), b.Orbits[i].Size())
				product *= b.Orbits[i].Size()
			}
			fmt.Fprintf(a.stdout, "|<gens>| = %d\n", product)

			return nil
		},
	}

	gf.register(cmd.Flags())
	cmd.Flags().BoolVar(&schreier, "schreier", false, "use the Schreier-vector orbit engine instead of the direct one")

	return cmd
}
