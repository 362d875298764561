package unionfind

import "sort"

// LinkageRow is one merge of a single-linkage dendrogram in scipy format.
// Left and Right are cluster IDs: 0..n-1 are the original points and each
// merge i creates cluster n+i.
type LinkageRow struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// Label converts spanning-tree edges over points 0..n-1 into a single-linkage
// dendrogram. Edges are sorted by weight (stable); each edge that joins two
// clusters yields one row. Edges inside an existing cluster are skipped, so
// any edge list may be passed, not only a spanning tree.
func Label(edges []Edge[int], n int) []LinkageRow {
	if len(edges) == 0 || n <= 1 {
		return nil
	}

	sorted := make([]Edge[int], len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	uf := newLinkageUnionFind(n)

	result := make([]LinkageRow, 0, n-1)

	for _, e := range sorted {
		aa := uf.Find(e.From)
		bb := uf.Find(e.To)
		if aa == bb {
			continue
		}
		newSize := uf.size[aa] + uf.size[bb]

		result = append(result, LinkageRow{Left: aa, Right: bb, Distance: e.Weight, Size: newSize})

		// Both roots point at the next cluster ID, which becomes the new root.
		uf.size[uf.nextLabel] = newSize
		uf.parent[aa] = uf.nextLabel
		uf.parent[bb] = uf.nextLabel
		uf.nextLabel++
		if uf.nextLabel == len(uf.parent) {
			break
		}
	}

	return result
}
