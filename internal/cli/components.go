package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TrevorS/unionfind"
	"github.com/TrevorS/unionfind/internal/config"
	"github.com/TrevorS/unionfind/internal/edgefile"
	"github.com/TrevorS/unionfind/internal/edgestore"
)

func newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Print the connected components, one per line",
		Args:  cobra.NoArgs,
		RunE:  runComponents,
	}
	cmd.Flags().String("save-table", "", "also write (node, component) rows to this SQL table")
	cmd.Flags().Bool("watch", false, "re-run whenever the input file changes")
	_ = viper.BindPFlag("db.save_table", cmd.Flags().Lookup("save-table"))
	_ = viper.BindPFlag("watch", cmd.Flags().Lookup("watch"))
	return cmd
}

func runComponents(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if err := printComponents(ctx, cfg, out); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	if cfg.Input == "" {
		return fmt.Errorf("--watch needs --input")
	}
	return watchComponents(ctx, cfg, out, cmd.ErrOrStderr())
}

func printComponents(ctx context.Context, cfg config.Config, out io.Writer) error {
	g, err := loadGraph(ctx, cfg)
	if err != nil {
		return err
	}
	comps, err := unionfind.ConnectedComponents(g.Nodes, g.Edges)
	if err != nil {
		return err
	}
	for _, c := range comps {
		fmt.Fprintln(out, strings.Join(c, " "))
	}
	logf(cfg, "ufind: %d components", len(comps))

	if cfg.DB.SaveTable == "" {
		return nil
	}
	if cfg.DB.DSN == "" {
		return fmt.Errorf("--save-table needs --dsn")
	}
	store, err := edgestore.Open(ctx, cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveComponents(ctx, cfg.DB.SaveTable, comps)
}

// watchComponents reprints the components on every change to the input
// file until ctx is cancelled. Reload errors are reported and skipped.
func watchComponents(ctx context.Context, cfg config.Config, out, errOut io.Writer) error {
	w, err := edgefile.NewWatcher(cfg.Input)
	if err != nil {
		return err
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			fmt.Fprintln(out, "---")
			if err := printComponents(ctx, cfg, out); err != nil {
				fmt.Fprintln(errOut, err)
			}
		}
	}
}
