package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/permgroup/hcgt/blocks"
)

func (a *App) newBlocksCmd() *cobra.Command {
	gf := &groupFlags{}
	var alpha, beta int

	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "Dump the primitive block system seeded by two points",
		RunE: func(cmd *cobra.Command, args []string) error {
			dom, gens, err := gf.resolve()
			if err != nil {
				return err
			}

			bs, err := blocks.PrimitiveBlocks(dom, alpha, beta, gens)
			if err != nil {
				return err
			}

			for _, block := range bs {
				fmt.Fprintf(a.stdout, "%v\n", block)
			}

			return nil
		},
	}

	gf.register(cmd.Flags())
	cmd.Flags().IntVar(&alpha, "alpha", 1, "first seed point")
	cmd.Flags().IntVar(&beta, "beta", 2, "second seed point")

	return cmd
}
