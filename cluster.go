package unionfind

import (
	"fmt"
	"math"
	"runtime"
)

// ThresholdConfig controls ClusterByThreshold.
// Start with [DefaultThresholdConfig] and override the fields you need.
type ThresholdConfig struct {
	// Epsilon is the linking distance: two points closer than or equal to
	// Epsilon end up in the same cluster. Must be >= 0 and not NaN.
	Epsilon float64

	// Metric measures point distance. Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers is the number of goroutines used to find neighbor pairs.
	// 0 means runtime.NumCPU(). Must be >= 0.
	Workers int
}

// ThresholdResult is the output of ClusterByThreshold.
type ThresholdResult struct {
	// Labels assigns each point a cluster ID. IDs are dense and numbered in
	// order of first appearance, so Labels[0] is always 0.
	Labels []int

	// Sizes holds the number of points per cluster ID.
	Sizes []int
}

// DefaultThresholdConfig returns a ThresholdConfig with Epsilon 1 and the
// Euclidean metric.
func DefaultThresholdConfig() ThresholdConfig {
	return ThresholdConfig{
		Epsilon: 1.0,
		Metric:  EuclideanMetric{},
	}
}

func validateThresholdConfig(cfg *ThresholdConfig) error {
	if math.IsNaN(cfg.Epsilon) || cfg.Epsilon < 0 {
		return fmt.Errorf("unionfind: Epsilon must be >= 0, got %f", cfg.Epsilon)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("unionfind: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

func applyThresholdDefaults(cfg *ThresholdConfig) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// ClusterByThreshold groups points into the connected components of the
// graph that links every pair within cfg.Epsilon of each other. This is
// single-linkage clustering cut at Epsilon. All points must have the same
// dimensionality.
func ClusterByThreshold(data [][]float64, cfg ThresholdConfig) (*ThresholdResult, error) {
	applyThresholdDefaults(&cfg)
	if err := validateThresholdConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n == 0 {
		return &ThresholdResult{Labels: []int{}, Sizes: []int{}}, nil
	}

	dims := len(data[0])
	flat := make([]float64, n*dims)
	for i, row := range data {
		if len(row) != dims {
			return nil, fmt.Errorf("unionfind: point %d has %d dimensions, want %d", i, len(row), dims)
		}
		copy(flat[i*dims:], row)
	}

	uf := NewUnionFind(n)
	for _, p := range neighborPairsParallel(flat, n, dims, cfg.Epsilon, cfg.Metric, cfg.Workers) {
		uf.Union(p[0], p[1])
	}

	return labelSets(uf), nil
}

// labelSets assigns dense labels to the sets of uf in order of first
// appearance.
func labelSets(uf *UnionFind) *ThresholdResult {
	labels := make([]int, uf.Len())
	sizes := make([]int, 0, uf.Count())
	byRoot := make(map[int]int, uf.Count())
	for i := range labels {
		root := uf.Find(i)
		id, ok := byRoot[root]
		if !ok {
			id = len(sizes)
			byRoot[root] = id
			sizes = append(sizes, uf.size[root])
		}
		labels[i] = id
	}
	return &ThresholdResult{Labels: labels, Sizes: sizes}
}
