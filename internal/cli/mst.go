package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TrevorS/unionfind"
	"github.com/TrevorS/unionfind/internal/config"
)

func newMSTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mst",
		Short: "Print a minimum spanning forest",
		Long: "mst prints the edges of a minimum spanning forest as \"from to weight\", " +
			"followed by the total weight and the number of trees.",
		Args: cobra.NoArgs,
		RunE: runMST,
	}
}

func runMST(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	g, err := loadGraph(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	forest, err := unionfind.MinimumSpanningForest(g.Nodes, g.Edges)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range forest.Edges {
		fmt.Fprintf(out, "%s %s %s\n", e.From, e.To, formatWeight(e.Weight))
	}
	fmt.Fprintf(out, "total %s\n", formatWeight(forest.Weight))
	fmt.Fprintf(out, "trees %d\n", forest.Components)
	return nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
