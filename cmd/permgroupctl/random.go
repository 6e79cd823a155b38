package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/permgroup/hcgt/randgen"
)

func (a *App) newRandomCmd() *cobra.Command {
	gf := &groupFlags{}
	var count, wordLength, burnIn int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print n product-replacement samples from a generating set",
		RunE: func(cmd *cobra.Command, args []string) error {
			dom, gens, err := gf.resolve()
			if err != nil {
				return err
			}

			gen, err := randgen.New(dom, gens, randgen.WithWordLength(wordLength), randgen.WithBurnIn(burnIn))
			if err != nil {
				return err
			}

			for i := 0; i < count; i++ {
				fmt.Fprintln(a.stdout, gen.Next())
			}

			return nil
		},
	}

	gf.register(cmd.Flags())
	cmd.Flags().IntVarP(&count, "n", "n", 10, "number of samples to print")
	cmd.Flags().IntVar(&wordLength, "word-length", 10, "size of the product-replacement state array")
	cmd.Flags().IntVar(&burnIn, "burn-in", 10, "warm-up steps before the first sample")

	return cmd
}
