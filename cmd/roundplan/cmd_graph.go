package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundplan/conflict"
)

func newGraphCmd(a *app) *cobra.Command {
	var perFixture bool

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Print conflict graph statistics for a league",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			lg, err := loadLeague(path)
			if err != nil {
				return err
			}
			g, err := conflict.Build(lg.Roster.Fixtures(), lg.Homes)
			if err != nil {
				return err
			}
			st := g.Stats()
			a.logger.Debug("conflict graph built", "fixtures", st.VertexCount, "conflicts", st.EdgeCount)

			fmt.Fprintf(a.stdout, "teams:          %d\n", lg.Roster.Len())
			fmt.Fprintf(a.stdout, "fixtures:       %d\n", st.VertexCount)
			fmt.Fprintf(a.stdout, "conflicts:      %d\n", st.EdgeCount)
			fmt.Fprintf(a.stdout, "degree:         %d..%d\n", st.MinDegree, st.MaxDegree)
			fmt.Fprintf(a.stdout, "home conflicts: %d\n", lg.Homes.Len())
			fmt.Fprintf(a.stdout, "forbidden:      %d pairs\n", lg.Forbidden.Len())
			fmt.Fprintf(a.stdout, "rounds:         %d x %d\n", lg.Rounds, lg.Capacity)

			if perFixture {
				fmt.Fprintln(a.stdout)
				for i := 0; i < g.Len(); i++ {
					fmt.Fprintf(a.stdout, "%-24s %d\n", g.Fixture(i), g.Degree(i))
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&perFixture, "fixtures", false, "also list every fixture with its conflict degree")

	return cmd
}
