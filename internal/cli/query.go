package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TrevorS/unionfind/internal/config"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query A B",
		Short: "Report whether two nodes are in the same component",
		Args:  cobra.ExactArgs(2),
		RunE:  runQuery,
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	g, err := loadGraph(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	ds, err := g.buildSet()
	if err != nil {
		return err
	}

	same, err := ds.SameComponent(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), same)
	return nil
}
