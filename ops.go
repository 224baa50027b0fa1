package smootharray

import (
	"cmp"
	"fmt"
	"slices"
)

// Extend appends each value in order. Stops at the first error.
func (a *Array[T]) Extend(values ...T) error {
	for _, v := range values {
		if err := a.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// Insert places v at index i, shifting later elements right. Valid
// indices are [0, Len()]. O(n) in the number of shifted elements; this
// operation is not covered by the O(1) append bound.
func (a *Array[T]) Insert(i int, v T) error {
	a.panicIfReleased()
	if i < 0 || i > a.size {
		return ErrIndexOutOfRange
	}
	var zero T
	if err := a.Append(zero); err != nil {
		return err
	}
	for j := a.size - 1; j > i; j-- {
		*a.slot(j) = *a.slot(j - 1)
	}
	*a.slot(i) = v
	return nil
}

// RemoveAt removes and returns the element at index i, shifting later
// elements left. O(n).
func (a *Array[T]) RemoveAt(i int) (T, error) {
	a.panicIfReleased()
	var zero T
	if i < 0 || i >= a.size {
		return zero, ErrIndexOutOfRange
	}
	v := *a.slot(i)
	for j := i + 1; j < a.size; j++ {
		*a.slot(j - 1) = *a.slot(j)
	}
	a.size--
	*a.slot(a.size) = zero // let the GC reclaim the vacated slot
	if m := a.mig; m != nil {
		// The shift wrote every logical index through the resolver, so
		// the copied/uncopied split stays where it is. Slots past the
		// new size never need copying, and a drained source can be
		// released immediately.
		if m.srcSize > a.size {
			m.srcSize = a.size
		}
		if m.cursor >= m.srcSize {
			m.src.release()
			a.mig = nil
		}
	}
	return v, nil
}

// Pop removes and returns the last element.
// Returns ErrIndexOutOfRange if the array is empty.
func (a *Array[T]) Pop() (T, error) {
	return a.RemoveAt(a.size - 1)
}

// Slice returns the elements in append order as a freshly allocated
// slice. The result does not alias the array's storage.
func (a *Array[T]) Slice() []T {
	a.panicIfReleased()
	out := make([]T, a.size)
	for i := range out {
		out[i] = *a.slot(i)
	}
	return out
}

// Reverse reverses the elements in place.
func (a *Array[T]) Reverse() {
	a.panicIfReleased()
	for i, j := 0, a.size-1; i < j; i, j = i+1, j-1 {
		pi, pj := a.slot(i), a.slot(j)
		*pi, *pj = *pj, *pi
	}
}

// SortFunc sorts the elements in place using the comparison function
// (same contract as slices.SortFunc). The sort runs on a copy and is
// written back through the index resolver, so it is safe mid-migration.
func (a *Array[T]) SortFunc(compare func(a, b T) int) {
	s := a.Slice()
	slices.SortFunc(s, compare)
	for i, v := range s {
		*a.slot(i) = v
	}
}

// Copy returns a deep structural copy: buffers, migration progress and
// growth factor are all duplicated, so the copy has the same worst-case
// append behavior as the original from this point on.
func (a *Array[T]) Copy() *Array[T] {
	a.panicIfReleased()
	c := &Array[T]{size: a.size, policy: a.policy}
	if a.active != nil {
		c.active = newBuffer[T](a.active.capacity())
		copy(c.active.slots, a.active.slots)
		c.allocs++
	}
	if m := a.mig; m != nil {
		src := newBuffer[T](m.src.capacity())
		copy(src.slots, m.src.slots)
		c.mig = &migration[T]{src: src, cursor: m.cursor, srcSize: m.srcSize}
		c.allocs++
	}
	return c
}

// String implements fmt.Stringer.
func (a *Array[T]) String() string {
	if a.released {
		return "SmoothArray(<released>)"
	}
	if a.size == 0 {
		return "SmoothArray()"
	}
	return fmt.Sprintf("SmoothArray(%v)", a.Slice())
}

// IndexOf returns the index of the first occurrence of v, or -1 if v is
// not present.
func IndexOf[T comparable](a *Array[T], v T) int {
	a.panicIfReleased()
	for i := 0; i < a.size; i++ {
		if *a.slot(i) == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is present in the array.
func Contains[T comparable](a *Array[T], v T) bool {
	return IndexOf(a, v) >= 0
}

// Count returns the number of occurrences of v.
func Count[T comparable](a *Array[T], v T) int {
	a.panicIfReleased()
	n := 0
	for i := 0; i < a.size; i++ {
		if *a.slot(i) == v {
			n++
		}
	}
	return n
}

// Remove deletes the first occurrence of v.
// Returns ErrValueNotFound if v is not present.
func Remove[T comparable](a *Array[T], v T) error {
	i := IndexOf(a, v)
	if i < 0 {
		return ErrValueNotFound
	}
	_, err := a.RemoveAt(i)
	return err
}

// Sort sorts an array of ordered elements in ascending order.
func Sort[T cmp.Ordered](a *Array[T]) {
	a.SortFunc(cmp.Compare[T])
}
