package unionfind

import (
	"fmt"
	"log"
	"math"
	"sort"
)

// Edge is an undirected weighted edge between two elements.
type Edge[T comparable] struct {
	From   T
	To     T
	Weight float64
}

// SpanningForest is a minimum spanning forest: one minimum spanning tree per
// connected component.
type SpanningForest[T comparable] struct {
	// Edges are the kept edges in ascending weight order.
	Edges []Edge[T]
	// Weight is the sum of the kept edge weights.
	Weight float64
	// Components is the number of trees in the forest, isolated nodes
	// included.
	Components int
}

// MinimumSpanningForest computes a minimum spanning forest with Kruskal's
// algorithm. Every node must be listed exactly once and every edge endpoint
// must be one of the nodes. Edges with equal weight are considered in input
// order, so the result is deterministic.
func MinimumSpanningForest[T comparable](nodes []T, edges []Edge[T]) (*SpanningForest[T], error) {
	ds, err := buildSet(nodes)
	if err != nil {
		return nil, err
	}

	sorted := make([]Edge[T], len(edges))
	copy(sorted, edges)
	for _, e := range sorted {
		if math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("unionfind: %w: edge %v-%v is NaN", ErrInvalidWeight, e.From, e.To)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	forest := &SpanningForest[T]{}
	hasInf := false
	for _, e := range sorted {
		merged, err := ds.Union(e.From, e.To)
		if err != nil {
			return nil, err
		}
		if !merged {
			continue
		}
		if math.IsInf(e.Weight, 1) {
			hasInf = true
		}
		forest.Edges = append(forest.Edges, e)
		forest.Weight += e.Weight
	}
	forest.Components = ds.Count()

	if hasInf {
		log.Printf("unionfind: spanning forest contains edge(s) with +Inf weight")
	}

	return forest, nil
}

// ConnectedComponents groups nodes into the connected components induced by
// edges. Components are ordered by the position of their first node in
// nodes, and members keep that order too.
func ConnectedComponents[T comparable](nodes []T, edges []Edge[T]) ([][]T, error) {
	ds, err := buildSet(nodes)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if _, err := ds.Union(e.From, e.To); err != nil {
			return nil, err
		}
	}
	return ds.Components(), nil
}

func buildSet[T comparable](nodes []T) (*DisjointSet[T], error) {
	ds := New[T]()
	for _, n := range nodes {
		if err := ds.Add(n); err != nil {
			return nil, err
		}
	}
	return ds, nil
}
