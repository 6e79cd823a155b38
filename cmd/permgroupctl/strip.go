package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/permgroup/hcgt/bsgs"
	"github.com/permgroup/hcgt/orbit"
	"github.com/permgroup/hcgt/permutation"
)

func (a *App) newStripCmd() *cobra.Command {
	gf := &groupFlags{}
	var literal string

	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Strip a literal permutation through a BSGS and report membership",
		RunE: func(cmd *cobra.Command, args []string) error {
			dom, gens, err := gf.resolve()
			if err != nil {
				return err
			}

			b, err := bsgs.SchreierSims(dom, gens, orbit.DirectFactory[int])
			if err != nil {
				return err
			}

			g, err := parsePermutation(dom, literal)
			if err != nil {
				return err
			}

			h, idx, err := bsgs.Strip(g, b.Base, b.Orbits)
			if err != nil {
				return err
			}

			member := idx == len(b.Base) && h.Equals(permutation.Identity(dom))
			fmt.Fprintf(a.stdout, "escape index: %d\nresidual: %s\nmember: %t\n", idx, h, member)

			return nil
		},
	}

	gf.register(cmd.Flags())
	cmd.Flags().StringVar(&literal, "elem", "", "the permutation to strip, in cycle notation")

	return cmd
}
