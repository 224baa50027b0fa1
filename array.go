package smootharray

// buffer is a fixed-capacity, contiguous, zero-indexed storage region.
// Capacity is immutable once allocated; only slots below the array's
// logical size hold meaningful values.
type buffer[T any] struct {
	slots []T
}

// newBuffer allocates a buffer with the given capacity.
func newBuffer[T any](capacity int) *buffer[T] {
	return &buffer[T]{slots: make([]T, capacity)}
}

func (b *buffer[T]) capacity() int {
	return len(b.slots)
}

// release zeroes the slots so the GC can reclaim referenced values, then
// drops the backing storage.
func (b *buffer[T]) release() {
	clear(b.slots)
	b.slots = nil
}

// Array is a dynamic array with worst-case (non-amortized) O(1) append.
// Not goroutine-safe; use SafeArray for concurrent access.
type Array[T any] struct {
	size     int
	active   *buffer[T]    // destination buffer while migrating
	mig      *migration[T] // nil while stable
	policy   growthPolicy
	released bool

	copySteps uint64 // lifetime incremental copy steps
	allocs    uint64 // lifetime buffer allocations
}

// New creates an empty Array with the specified growth factor.
// If growthFactor < 2, DefaultGrowthFactor is used.
// No storage is allocated until the first append.
func New[T any](growthFactor int) *Array[T] {
	if growthFactor < DefaultGrowthFactor {
		growthFactor = DefaultGrowthFactor
	}
	return &Array[T]{policy: growthPolicy{factor: growthFactor}}
}

// From creates an Array with the default growth factor holding the given
// values in order.
func From[T any](values ...T) *Array[T] {
	a := New[T](0)
	for _, v := range values {
		_ = a.Append(v) // cannot overflow for an argument list
	}
	return a
}

// Append adds v to the end of the array. Every call performs at most one
// element copy and one element write, regardless of array length. The
// call that finds the buffer full allocates the next buffer and starts
// an incremental migration; returns ErrCapacityOverflow if the next
// capacity cannot be represented, leaving the array unchanged.
func (a *Array[T]) Append(v T) error {
	a.panicIfReleased()
	switch {
	case a.active == nil:
		// Very first append: allocate the initial buffer directly.
		a.active = newBuffer[T](1)
		a.allocs++
	case a.mig == nil && a.size == a.active.capacity():
		if err := a.beginMigration(); err != nil {
			return err
		}
	}
	if a.mig != nil {
		a.copyStep()
	}
	a.active.slots[a.size] = v
	a.size++
	return nil
}

// Get returns the element at index i.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
func (a *Array[T]) Get(i int) (T, error) {
	a.panicIfReleased()
	if i < 0 || i >= a.size {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return *a.slot(i), nil
}

// Set replaces the element at index i.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
func (a *Array[T]) Set(i int, v T) error {
	a.panicIfReleased()
	if i < 0 || i >= a.size {
		return ErrIndexOutOfRange
	}
	*a.slot(i) = v
	return nil
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return a.size
}

// slot resolves index i to the buffer that logically holds it. While
// migrating, indices below the cursor have already been copied and
// indices at or beyond sourceSize were appended after the migration
// began; both live in the destination. Everything in between still
// lives only in the source. The caller must ensure i is in range.
func (a *Array[T]) slot(i int) *T {
	if m := a.mig; m != nil && i >= m.cursor && i < m.srcSize {
		return &m.src.slots[i]
	}
	return &a.active.slots[i]
}

// Clear removes all elements and drops both buffers. The array remains
// usable; the next append re-allocates from scratch.
func (a *Array[T]) Clear() {
	a.panicIfReleased()
	if a.mig != nil {
		a.mig.src.release()
		a.mig = nil
	}
	if a.active != nil {
		a.active.release()
		a.active = nil
	}
	a.size = 0
}

// Release drops all storage and makes the array unusable.
// Any subsequent operation will panic.
func (a *Array[T]) Release() {
	if a.released {
		return
	}
	a.Clear()
	a.released = true
}

// panicIfReleased panics if the array has been released.
func (a *Array[T]) panicIfReleased() {
	if a.released {
		panic("smootharray: use after Release()")
	}
}
