package smootharray

import "sync"

// SafeArray is a mutex-protected wrapper around Array for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking. The worst-case O(1) append bound survives the wrapper:
// the critical section itself does constant work.
type SafeArray[T any] struct {
	mu sync.Mutex
	a  *Array[T]
}

// NewSafe creates a new thread-safe array with the specified growth
// factor. If growthFactor < 2, DefaultGrowthFactor is used.
func NewSafe[T any](growthFactor int) *SafeArray[T] {
	return &SafeArray[T]{a: New[T](growthFactor)}
}

// Append thread-safely adds v to the end of the array.
func (s *SafeArray[T]) Append(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Append(v)
}

// Get thread-safely returns the element at index i.
func (s *SafeArray[T]) Get(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Get(i)
}

// Set thread-safely replaces the element at index i.
func (s *SafeArray[T]) Set(i int, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Set(i, v)
}

// Len thread-safely returns the number of elements.
func (s *SafeArray[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Len()
}

// Extend thread-safely appends each value in order.
func (s *SafeArray[T]) Extend(values ...T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Extend(values...)
}

// Insert thread-safely places v at index i.
func (s *SafeArray[T]) Insert(i int, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Insert(i, v)
}

// RemoveAt thread-safely removes and returns the element at index i.
func (s *SafeArray[T]) RemoveAt(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.RemoveAt(i)
}

// Pop thread-safely removes and returns the last element.
func (s *SafeArray[T]) Pop() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Pop()
}

// Slice thread-safely returns the elements in append order.
func (s *SafeArray[T]) Slice() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Slice()
}

// Clear thread-safely removes all elements and drops all storage.
func (s *SafeArray[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Release thread-safely drops all storage and makes the array unusable.
func (s *SafeArray[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic helper functions for SafeArray

// SafeIndexOf thread-safely returns the index of the first occurrence of
// v, or -1 if v is not present.
func SafeIndexOf[T comparable](s *SafeArray[T], v T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IndexOf(s.a, v)
}

// SafeContains thread-safely reports whether v is present.
func SafeContains[T comparable](s *SafeArray[T], v T) bool {
	return SafeIndexOf(s, v) >= 0
}

// SafeCount thread-safely returns the number of occurrences of v.
func SafeCount[T comparable](s *SafeArray[T], v T) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Count(s.a, v)
}

// SafeRemove thread-safely deletes the first occurrence of v.
func SafeRemove[T comparable](s *SafeArray[T], v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Remove(s.a, v)
}
