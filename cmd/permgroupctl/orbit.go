package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/permgroup/hcgt/orbit"
)

func (a *App) newOrbitCmd() *cobra.Command {
	gf := &groupFlags{}
	var beta int
	var engine string

	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Dump the orbit of a point under a generating set",
		RunE: func(cmd *cobra.Command, args []string) error {
			dom, gens, err := gf.resolve()
			if err != nil {
				return err
			}

			var eng orbit.Engine[int]
			switch engine {
			case "schreier":
				eng = orbit.NewSchreier(dom, beta, gens)
			case "direct", "":
				eng = orbit.NewDirect(dom, beta, gens)
			default:
				return fmt.Errorf("permgroupctl: unknown orbit engine %q", engine)
			}

			fmt.Fprintln(a.stdout, eng.String())

			return nil
		},
	}

	gf.register(cmd.Flags())
	cmd.Flags().IntVar(&beta, "beta", 1, "the point whose orbit to compute")
	cmd.Flags().StringVar(&engine, "engine", "direct", `orbit engine: "direct" or "schreier"`)

	return cmd
}
