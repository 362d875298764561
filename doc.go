// Package unionfind implements the disjoint-set (union-find) data structure
// and the connectivity algorithms built on top of it.
//
// A DisjointSet partitions a universe of elements into non-overlapping
// subsets. Find uses path compression and Union attaches the smaller subset
// under the larger one, so a sequence of operations runs in near-linear
// time overall.
//
// Basic usage:
//
//	ds := unionfind.New[string]()
//	_ = ds.Add("a")
//	_ = ds.Add("b")
//	_, _ = ds.Union("a", "b")
//	same, err := ds.SameComponent("a", "b") // true, nil
//
// Elements must be registered with Add before use. Referencing an unknown
// element returns an error wrapping ErrUnknownElement, and adding an element
// twice returns ErrDuplicateElement:
//
//	if _, err := ds.Find("z"); errors.Is(err, unionfind.ErrUnknownElement) {
//		// ...
//	}
//
// DisjointSet is not safe for concurrent use. Synchronized wraps it with a
// single mutex. UnionFind is a dense, slice-backed variant for the integers
// 0..n-1.
//
// # Algorithms
//
// MinimumSpanningForest runs Kruskal's algorithm over an edge list,
// ConnectedComponents groups nodes by connectivity, Label turns spanning-tree
// edges into a scipy-style single-linkage dendrogram, and ClusterByThreshold
// links points closer than a distance threshold. GraphComponents and
// GraphSpanningForest accept gonum graphs directly.
package unionfind
