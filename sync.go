package unionfind

import "sync"

// Synchronized is a DisjointSet guarded by a single mutex. Every method
// takes the lock, queries included, since Find compresses paths.
type Synchronized[T comparable] struct {
	mu sync.Mutex
	ds *DisjointSet[T]
}

// NewSynchronized returns an empty Synchronized set.
func NewSynchronized[T comparable]() *Synchronized[T] {
	return &Synchronized[T]{ds: New[T]()}
}

// Add registers x as a new singleton subset. See DisjointSet.Add.
func (s *Synchronized[T]) Add(x T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Add(x)
}

// Has reports whether x has been added.
func (s *Synchronized[T]) Has(x T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Has(x)
}

// Find returns the root of the subset containing x.
func (s *Synchronized[T]) Find(x T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Find(x)
}

// Union merges the subsets containing x and y and reports whether a merge
// happened. See DisjointSet.Union for the tie rule.
func (s *Synchronized[T]) Union(x, y T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Union(x, y)
}

// SameComponent reports whether x and y belong to the same subset.
func (s *Synchronized[T]) SameComponent(x, y T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.SameComponent(x, y)
}

// Size returns the number of elements in the subset containing x.
func (s *Synchronized[T]) Size(x T) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Size(x)
}

// Len returns the number of elements added.
func (s *Synchronized[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Len()
}

// Count returns the number of disjoint subsets.
func (s *Synchronized[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Count()
}

// Components returns every subset in the order documented on
// DisjointSet.Components.
func (s *Synchronized[T]) Components() [][]T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Components()
}
