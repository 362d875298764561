package unionfind

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mustAdd registers every element or fails the test.
func mustAdd[T comparable](t *testing.T, ds *DisjointSet[T], xs ...T) {
	t.Helper()
	for _, x := range xs {
		if err := ds.Add(x); err != nil {
			t.Fatalf("Add(%v): %v", x, err)
		}
	}
}

func mustUnion[T comparable](t *testing.T, ds *DisjointSet[T], x, y T) bool {
	t.Helper()
	merged, err := ds.Union(x, y)
	if err != nil {
		t.Fatalf("Union(%v, %v): %v", x, y, err)
	}
	return merged
}

func mustSame[T comparable](t *testing.T, ds *DisjointSet[T], x, y T) bool {
	t.Helper()
	same, err := ds.SameComponent(x, y)
	if err != nil {
		t.Fatalf("SameComponent(%v, %v): %v", x, y, err)
	}
	return same
}

func mustFind[T comparable](t *testing.T, ds *DisjointSet[T], x T) T {
	t.Helper()
	root, err := ds.Find(x)
	if err != nil {
		t.Fatalf("Find(%v): %v", x, err)
	}
	return root
}

// sizeSum adds up the recorded size of every root.
func sizeSum[T comparable](ds *DisjointSet[T]) int {
	total := 0
	for _, s := range ds.size {
		total += s
	}
	return total
}

func TestDisjointSet_Singletons(t *testing.T) {
	ds := New[int]()
	mustAdd(t, ds, 1, 2, 3)

	if mustSame(t, ds, 1, 2) {
		t.Error("1 and 2 should start in different subsets")
	}
	if !mustSame(t, ds, 1, 1) {
		t.Error("1 should be in the same subset as itself")
	}
	for _, x := range []int{1, 2, 3} {
		if root := mustFind(t, ds, x); root != x {
			t.Errorf("Find(%d) = %d, want %d", x, root, x)
		}
	}
	if ds.Count() != 3 {
		t.Errorf("Count() = %d, want 3", ds.Count())
	}
}

func TestDisjointSet_UnionTwo(t *testing.T) {
	ds := New[int]()
	mustAdd(t, ds, 1, 2)

	if !mustUnion(t, ds, 1, 2) {
		t.Error("Union(1,2) reported no merge")
	}
	if !mustSame(t, ds, 1, 2) {
		t.Error("after Union(1,2), 1 and 2 should share a subset")
	}
	if mustFind(t, ds, 1) != mustFind(t, ds, 2) {
		t.Error("after Union(1,2), Find(1) != Find(2)")
	}
}

func TestDisjointSet_TransitiveChain(t *testing.T) {
	ds := New[int]()
	mustAdd(t, ds, 1, 2, 3)
	mustUnion(t, ds, 1, 2)
	mustUnion(t, ds, 2, 3)

	if !mustSame(t, ds, 1, 3) {
		t.Error("1 and 3 should be connected through 2")
	}
}

func TestDisjointSet_DuplicateUnion(t *testing.T) {
	ds := New[int]()
	mustAdd(t, ds, 1, 2)
	mustUnion(t, ds, 1, 2)

	if mustUnion(t, ds, 1, 2) {
		t.Error("second Union(1,2) should report no merge")
	}
	if !mustSame(t, ds, 1, 2) {
		t.Error("1 and 2 should still share a subset")
	}
	size, err := ds.Size(1)
	if err != nil {
		t.Fatalf("Size(1): %v", err)
	}
	if size != 2 {
		t.Errorf("Size(1) = %d, want 2", size)
	}
}

func TestDisjointSet_LongChain(t *testing.T) {
	const n = 1000
	ds := New[int]()
	for i := 0; i <= n; i++ {
		mustAdd(t, ds, i)
	}
	for i := 0; i < n; i++ {
		mustUnion(t, ds, i, i+1)
	}

	if mustFind(t, ds, 0) != mustFind(t, ds, n) {
		t.Errorf("Find(0) != Find(%d)", n)
	}
	if ds.Count() != 1 {
		t.Errorf("Count() = %d, want 1", ds.Count())
	}
	if size, _ := ds.Size(500); size != n+1 {
		t.Errorf("Size(500) = %d, want %d", size, n+1)
	}
}

func TestDisjointSet_PathCompression(t *testing.T) {
	ds := New[int]()
	mustAdd(t, ds, 0, 1, 2, 3, 4)

	// Force a degenerate chain 4→3→2→1→0 that union by size never builds.
	for i := 1; i < 5; i++ {
		ds.parent[i] = i - 1
		delete(ds.size, i)
	}
	ds.size[0] = 5

	if root := mustFind(t, ds, 4); root != 0 {
		t.Fatalf("Find(4) = %d, want 0", root)
	}
	for i := 1; i < 5; i++ {
		if ds.parent[i] != 0 {
			t.Errorf("after Find(4), parent[%d] = %d, want 0", i, ds.parent[i])
		}
	}
}

func TestDisjointSet_FindIdempotent(t *testing.T) {
	ds := New[int]()
	mustAdd(t, ds, 0, 1, 2, 3)
	mustUnion(t, ds, 0, 1)
	mustUnion(t, ds, 2, 3)
	mustUnion(t, ds, 3, 1)

	for x := 0; x < 4; x++ {
		first := mustFind(t, ds, x)
		if ds.parent[x] != first {
			t.Errorf("after Find(%d), parent = %d, want root %d", x, ds.parent[x], first)
		}
		if second := mustFind(t, ds, x); second != first {
			t.Errorf("Find(%d) returned %d then %d", x, first, second)
		}
	}
}

func TestDisjointSet_UnionBySize(t *testing.T) {
	ds := New[int]()
	mustAdd(t, ds, 0, 1, 2, 3)
	mustUnion(t, ds, 0, 1)
	mustUnion(t, ds, 0, 2)
	bigRoot := mustFind(t, ds, 0)

	// The singleton is passed first but the larger subset still wins.
	mustUnion(t, ds, 3, 0)
	if root := mustFind(t, ds, 3); root != bigRoot {
		t.Errorf("Find(3) = %d, want larger subset's root %d", root, bigRoot)
	}
	if _, ok := ds.size[3]; ok {
		t.Error("absorbed root 3 still has a size entry")
	}
}

func TestDisjointSet_TieGoesToFirstArgument(t *testing.T) {
	ds := New[string]()
	mustAdd(t, ds, "a", "b", "c", "d")

	mustUnion(t, ds, "a", "b")
	if root := mustFind(t, ds, "b"); root != "a" {
		t.Errorf("Union(a,b): root = %q, want %q", root, "a")
	}

	mustUnion(t, ds, "d", "c")
	if root := mustFind(t, ds, "c"); root != "d" {
		t.Errorf("Union(d,c): root = %q, want %q", root, "d")
	}

	// Two subsets of size 2: the first argument's root survives.
	mustUnion(t, ds, "c", "b")
	if root := mustFind(t, ds, "a"); root != "d" {
		t.Errorf("Union(c,b): root = %q, want %q", root, "d")
	}
	if ds.size["d"] != 4 {
		t.Errorf("size[d] = %d, want 4", ds.size["d"])
	}
}

func TestDisjointSet_DuplicateAdd(t *testing.T) {
	ds := New[int]()
	mustAdd(t, ds, 1, 2)
	mustUnion(t, ds, 1, 2)

	err := ds.Add(2)
	if !errors.Is(err, ErrDuplicateElement) {
		t.Fatalf("Add(2) twice: err = %v, want ErrDuplicateElement", err)
	}
	// The partition must be untouched.
	if !mustSame(t, ds, 1, 2) {
		t.Error("duplicate Add split 2 out of its subset")
	}
	if size, _ := ds.Size(2); size != 2 {
		t.Errorf("Size(2) = %d, want 2", size)
	}
	if ds.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ds.Len())
	}
}

func TestDisjointSet_NaNRejected(t *testing.T) {
	ds := New[float64]()
	mustAdd(t, ds, 1.5)

	for i := 0; i < 2; i++ {
		if err := ds.Add(math.NaN()); !errors.Is(err, ErrInvalidElement) {
			t.Fatalf("Add(NaN) #%d: err = %v, want ErrInvalidElement", i+1, err)
		}
	}
	if ds.Len() != 1 || ds.Count() != 1 {
		t.Fatalf("Len() = %d, Count() = %d, want 1, 1", ds.Len(), ds.Count())
	}

	// Components must not grow the set on repeated calls.
	want := [][]float64{{1.5}}
	for i := 0; i < 2; i++ {
		if diff := cmp.Diff(want, ds.Components()); diff != "" {
			t.Errorf("Components() call %d mismatch (-want +got):\n%s", i+1, diff)
		}
	}
	if ds.Len() != 1 {
		t.Errorf("Len() after Components = %d, want 1", ds.Len())
	}

	type point struct{ X, Y float64 }
	ps := New[point]()
	if err := ps.Add(point{1, math.NaN()}); !errors.Is(err, ErrInvalidElement) {
		t.Errorf("Add(point with NaN): err = %v, want ErrInvalidElement", err)
	}
	if ps.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ps.Len())
	}
}

func TestDisjointSet_UnknownElement(t *testing.T) {
	ds := New[string]()
	mustAdd(t, ds, "a")

	if _, err := ds.Find("zz"); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("Find(zz): err = %v, want ErrUnknownElement", err)
	}
	if _, err := ds.Union("a", "zz"); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("Union(a,zz): err = %v, want ErrUnknownElement", err)
	}
	if _, err := ds.Union("zz", "a"); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("Union(zz,a): err = %v, want ErrUnknownElement", err)
	}
	if _, err := ds.SameComponent("a", "zz"); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("SameComponent(a,zz): err = %v, want ErrUnknownElement", err)
	}
	if _, err := ds.Size("zz"); !errors.Is(err, ErrUnknownElement) {
		t.Errorf("Size(zz): err = %v, want ErrUnknownElement", err)
	}
	// A failed Union must not have registered anything.
	if ds.Has("zz") {
		t.Error("zz was registered by a failed call")
	}
}

func TestDisjointSet_Components(t *testing.T) {
	ds := New[string]()
	mustAdd(t, ds, "e", "a", "d", "b", "c")
	mustUnion(t, ds, "a", "b")
	mustUnion(t, ds, "c", "e")

	want := [][]string{
		{"e", "c"},
		{"a", "b"},
		{"d"},
	}
	if diff := cmp.Diff(want, ds.Components()); diff != "" {
		t.Errorf("Components() mismatch (-want +got):\n%s", diff)
	}
}

func TestDisjointSet_Empty(t *testing.T) {
	ds := New[int]()
	if ds.Len() != 0 || ds.Count() != 0 {
		t.Errorf("empty set: Len=%d Count=%d, want 0 0", ds.Len(), ds.Count())
	}
	if comps := ds.Components(); len(comps) != 0 {
		t.Errorf("empty set: Components() = %v, want none", comps)
	}
}

// naivePartition tracks connectivity by relabeling, as an oracle for the
// random tests.
type naivePartition []int

func newNaivePartition(n int) naivePartition {
	p := make(naivePartition, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func (p naivePartition) union(x, y int) {
	from, to := p[y], p[x]
	for i := range p {
		if p[i] == from {
			p[i] = to
		}
	}
}

func TestDisjointSet_RandomAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 200

	ds := New[int]()
	for i := 0; i < n; i++ {
		mustAdd(t, ds, i)
	}
	oracle := newNaivePartition(n)

	for step := 0; step < 400; step++ {
		x, y := rng.Intn(n), rng.Intn(n)
		mustUnion(t, ds, x, y)
		oracle.union(x, y)

		// Unions are permanent and commutative in effect.
		if !mustSame(t, ds, y, x) {
			t.Fatalf("step %d: after Union(%d,%d), SameComponent(%d,%d) = false", step, x, y, y, x)
		}
		if got := sizeSum(ds); got != n {
			t.Fatalf("step %d: root sizes sum to %d, want %d", step, got, n)
		}
	}

	for i := 0; i < 500; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		want := oracle[a] == oracle[b]
		if got := mustSame(t, ds, a, b); got != want {
			t.Errorf("SameComponent(%d,%d) = %v, want %v", a, b, got, want)
		}
	}
}

func TestDisjointSet_Transitivity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n = 60

	ds := New[int]()
	for i := 0; i < n; i++ {
		mustAdd(t, ds, i)
	}
	for i := 0; i < 40; i++ {
		mustUnion(t, ds, rng.Intn(n), rng.Intn(n))
	}

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if !mustSame(t, ds, a, b) {
				continue
			}
			for c := 0; c < n; c++ {
				if mustSame(t, ds, b, c) && !mustSame(t, ds, a, c) {
					t.Fatalf("%d~%d and %d~%d but not %d~%d", a, b, b, c, a, c)
				}
			}
		}
	}
}

func TestDisjointSet_UnionOrderSameConnectivity(t *testing.T) {
	pairs := [][2]int{{0, 1}, {2, 3}, {1, 3}, {4, 5}, {6, 6}}

	forward := New[int]()
	backward := New[int]()
	for i := 0; i < 8; i++ {
		mustAdd(t, forward, i)
		mustAdd(t, backward, i)
	}
	for _, p := range pairs {
		mustUnion(t, forward, p[0], p[1])
		mustUnion(t, backward, p[1], p[0])
	}

	for a := 0; a < 8; a++ {
		for b := 0; b < 8; b++ {
			if mustSame(t, forward, a, b) != mustSame(t, backward, a, b) {
				t.Errorf("SameComponent(%d,%d) differs between union orders", a, b)
			}
		}
	}
}
