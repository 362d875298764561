package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/TrevorS/unionfind"
	"github.com/TrevorS/unionfind/internal/config"
)

func newClusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster points linked within a distance threshold",
		Long: "cluster reads points from a CSV file (one point per row, numeric columns) " +
			"and prints one cluster label per point.",
		Args: cobra.NoArgs,
		RunE: runCluster,
	}
	cmd.Flags().String("points", "", "CSV file of points (required)")
	cmd.Flags().Float64("eps", 1.0, "linking distance")
	cmd.Flags().String("metric", "euclidean", "euclidean, manhattan, chebyshev or cosine")
	cmd.Flags().Int("workers", 0, "goroutines for pair search (0 = NumCPU)")
	_ = cmd.MarkFlagRequired("points")
	_ = viper.BindPFlag("cluster.epsilon", cmd.Flags().Lookup("eps"))
	_ = viper.BindPFlag("cluster.metric", cmd.Flags().Lookup("metric"))
	_ = viper.BindPFlag("cluster.workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func runCluster(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	th, err := cfg.Threshold()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("points")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening points: %w", err)
	}
	defer f.Close()

	data, err := readPoints(f)
	if err != nil {
		return err
	}

	result, err := unionfind.ClusterByThreshold(data, th)
	if err != nil {
		return err
	}
	logf(cfg, "ufind: %d points in %d clusters", len(data), len(result.Sizes))

	out := cmd.OutOrStdout()
	for _, label := range result.Labels {
		fmt.Fprintln(out, label)
	}
	return nil
}

// readPoints parses CSV rows of floats. Rows starting with '#' are comments.
func readPoints(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var data [][]float64
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading points: %w", err)
		}
		row := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("point %d column %d: invalid number %q", len(data), i, field)
			}
			row[i] = v
		}
		data = append(data, row)
	}
	return data, nil
}
