package unionfind

import "fmt"

// DisjointSet partitions a set of comparable elements into disjoint subsets.
// It uses path compression and union by size. Elements must be registered
// with Add before they can be used in Find, Union or SameComponent.
//
// A DisjointSet is not safe for concurrent use, even for queries, because
// Find rewrites parent pointers. Use Synchronized when sharing one across
// goroutines.
type DisjointSet[T comparable] struct {
	// parent maps each element to its parent. A root maps to itself.
	parent map[T]T
	// size holds the subset size for roots only.
	size map[T]int
	// order records insertion order so Components is deterministic.
	order []T
}

// New returns an empty DisjointSet.
func New[T comparable]() *DisjointSet[T] {
	return &DisjointSet[T]{
		parent: make(map[T]T),
		size:   make(map[T]int),
	}
}

// Add registers x as a new singleton subset. Adding an element twice
// returns an error wrapping ErrDuplicateElement. A value that is not equal
// to itself (NaN, or a struct holding one) is rejected with
// ErrInvalidElement.
func (ds *DisjointSet[T]) Add(x T) error {
	if x != x {
		return fmt.Errorf("unionfind: %w: %v", ErrInvalidElement, x)
	}
	if _, ok := ds.parent[x]; ok {
		return fmt.Errorf("unionfind: %w: %v", ErrDuplicateElement, x)
	}
	ds.parent[x] = x
	ds.size[x] = 1
	ds.order = append(ds.order, x)
	return nil
}

// Has reports whether x has been added.
func (ds *DisjointSet[T]) Has(x T) bool {
	_, ok := ds.parent[x]
	return ok
}

// Find returns the root of the subset containing x. Every element on the
// path from x is re-pointed directly at the root.
func (ds *DisjointSet[T]) Find(x T) (T, error) {
	if _, ok := ds.parent[x]; !ok {
		var zero T
		return zero, fmt.Errorf("unionfind: %w: %v", ErrUnknownElement, x)
	}
	return ds.find(x), nil
}

// find assumes x is registered.
func (ds *DisjointSet[T]) find(x T) T {
	// Walk to the root.
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	// Path compression.
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union merges the subsets containing x and y. The root of the larger
// subset absorbs the other; on equal sizes x's root wins. It reports
// whether a merge happened, which is false when x and y already share a
// subset.
func (ds *DisjointSet[T]) Union(x, y T) (bool, error) {
	s1, err := ds.Find(x)
	if err != nil {
		return false, err
	}
	s2, err := ds.Find(y)
	if err != nil {
		return false, err
	}
	if s1 == s2 {
		return false, nil
	}

	if ds.size[s1] < ds.size[s2] {
		s1, s2 = s2, s1
	}
	ds.parent[s2] = s1
	ds.size[s1] += ds.size[s2]
	delete(ds.size, s2)
	return true, nil
}

// SameComponent reports whether x and y belong to the same subset.
func (ds *DisjointSet[T]) SameComponent(x, y T) (bool, error) {
	s1, err := ds.Find(x)
	if err != nil {
		return false, err
	}
	s2, err := ds.Find(y)
	if err != nil {
		return false, err
	}
	return s1 == s2, nil
}

// Size returns the number of elements in the subset containing x.
func (ds *DisjointSet[T]) Size(x T) (int, error) {
	root, err := ds.Find(x)
	if err != nil {
		return 0, err
	}
	return ds.size[root], nil
}

// Len returns the number of elements added.
func (ds *DisjointSet[T]) Len() int { return len(ds.parent) }

// Count returns the number of disjoint subsets.
func (ds *DisjointSet[T]) Count() int { return len(ds.size) }

// Components returns every subset. Subsets are ordered by the insertion
// order of their earliest member and members keep insertion order.
func (ds *DisjointSet[T]) Components() [][]T {
	index := make(map[T]int, len(ds.size))
	out := make([][]T, 0, len(ds.size))
	for _, x := range ds.order {
		root := ds.find(x)
		i, ok := index[root]
		if !ok {
			i = len(out)
			index[root] = i
			out = append(out, make([]T, 0, ds.size[root]))
		}
		out[i] = append(out[i], x)
	}
	return out
}
