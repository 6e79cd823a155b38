package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/permgroup/hcgt/allelements"
)

// elementsSizeGuard is the domain size above which "elements" refuses to
// run unless forced: BFS closure size grows with group order, which can
// explode well past what a terminal dump is useful for.
const elementsSizeGuard = 12

func (a *App) newElementsCmd() *cobra.Command {
	gf := &groupFlags{}
	var force bool

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Enumerate every element of <gens> via BFS closure",
		RunE: func(cmd *cobra.Command, args []string) error {
			dom, gens, err := gf.resolve()
			if err != nil {
				return err
			}

			if dom.Size() > elementsSizeGuard && !force {
				return fmt.Errorf("permgroupctl: domain of size %d may generate a very large group; pass --force to enumerate anyway", dom.Size())
			}

			all := allelements.AllElements(dom, gens)
			for _, p := range all {
				fmt.Fprintln(a.stdout, p)
			}
			fmt.Fprintf(a.stdout, "|<gens>| = %d\n", len(all))

			return nil
		},
	}

	gf.register(cmd.Flags())
	cmd.Flags().BoolVar(&force, "force", false, "enumerate even if the domain looks too large for a safe BFS closure")

	return cmd
}
