package unionfind

import (
	"slices"

	"gonum.org/v1/gonum/graph"
)

// GraphComponents returns the connected components of a gonum undirected
// graph as node IDs. Components are ordered by their smallest ID and members
// are sorted ascending.
func GraphComponents(g graph.Undirected) [][]int64 {
	ids := sortedNodeIDs(g)
	edges := graphEdges(g, ids, func(int64, int64) float64 { return 1 })
	// Every endpoint comes from ids, so this cannot fail.
	comps, _ := ConnectedComponents(ids, edges)
	return comps
}

// GraphSpanningForest computes the minimum spanning forest of a gonum
// weighted undirected graph. Ties between equal weights are broken by
// ascending (From, To) node IDs.
func GraphSpanningForest(g graph.WeightedUndirected) (*SpanningForest[int64], error) {
	ids := sortedNodeIDs(g)
	edges := graphEdges(g, ids, func(u, v int64) float64 {
		w, _ := g.Weight(u, v)
		return w
	})
	return MinimumSpanningForest(ids, edges)
}

func sortedNodeIDs(g graph.Graph) []int64 {
	var ids []int64
	nodes := g.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	slices.Sort(ids)
	return ids
}

// graphEdges lists each undirected edge once with From < To. Self loops are
// dropped since they never merge anything.
func graphEdges(g graph.Graph, ids []int64, weight func(u, v int64) float64) []Edge[int64] {
	var edges []Edge[int64]
	for _, u := range ids {
		var neighbors []int64
		to := g.From(u)
		for to.Next() {
			if v := to.Node().ID(); v > u {
				neighbors = append(neighbors, v)
			}
		}
		slices.Sort(neighbors)
		for _, v := range neighbors {
			edges = append(edges, Edge[int64]{From: u, To: v, Weight: weight(u, v)})
		}
	}
	return edges
}
