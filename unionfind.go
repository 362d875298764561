package unionfind

// UnionFind is a dense disjoint-set over the integers 0..n-1, backed by
// slices instead of maps. Indices outside that range panic.
type UnionFind struct {
	parent []int
	size   []int
	n      int
	count  int
	// nextLabel is the ID for the next merged cluster when the structure is
	// used for dendrogram labeling. Unused otherwise.
	nextLabel int
}

// NewUnionFind creates a UnionFind with n singleton elements.
func NewUnionFind(n int) *UnionFind {
	return newUnionFind(n, n)
}

// newLinkageUnionFind reserves 2*n - 1 slots so Label can store merged
// cluster IDs n, n+1, ... as roots.
func newLinkageUnionFind(n int) *UnionFind {
	total := 2*n - 1
	if total < 1 {
		total = 1
	}
	return newUnionFind(n, total)
}

func newUnionFind(n, total int) *UnionFind {
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &UnionFind{
		parent:    parent,
		size:      size,
		n:         n,
		count:     n,
		nextLabel: n,
	}
}

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger, with x's root winning ties. Returns the surviving root.
func (uf *UnionFind) Union(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}

	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	uf.size[rootY] = 0
	uf.count--
	return rootX
}

// Connected reports whether x and y are in the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// SizeOf returns the size of the set containing x.
func (uf *UnionFind) SizeOf(x int) int {
	return uf.size[uf.Find(x)]
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return uf.n }

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int { return uf.count }

// Sets returns the disjoint sets. Members are sorted and sets are ordered
// by their smallest member.
func (uf *UnionFind) Sets() [][]int {
	index := make(map[int]int, uf.count)
	out := make([][]int, 0, uf.count)
	for i := 0; i < uf.n; i++ {
		root := uf.Find(i)
		k, ok := index[root]
		if !ok {
			k = len(out)
			index[root] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], i)
	}
	return out
}
