package smootharray

// migration tracks an in-progress transfer from a full source buffer to
// a larger destination buffer. It exists only while a migration is
// active, so a source buffer can never outlive its paired destination
// and cursor.
type migration[T any] struct {
	src     *buffer[T]
	cursor  int // elements already copied into the destination
	srcSize int // elements the source held when the migration began
}

// beginMigration allocates the destination buffer and installs the
// migration state. All-or-nothing with respect to failure: if the growth
// policy cannot produce the next capacity, the array is left exactly as
// it was.
func (a *Array[T]) beginMigration() error {
	newCap, err := a.policy.next(a.active.capacity())
	if err != nil {
		return err
	}
	dst := newBuffer[T](newCap)
	a.mig = &migration[T]{src: a.active, srcSize: a.size}
	a.active = dst
	a.allocs++
	return nil
}

// copyStep moves at most one element from the source into the
// destination at the same offset, then finalizes the migration once the
// source is drained. With the default growth factor the destination
// fills on the same append that copies the last element, so the source
// is always released before the destination can overflow.
func (a *Array[T]) copyStep() {
	m := a.mig
	if m.cursor < m.srcSize {
		a.active.slots[m.cursor] = m.src.slots[m.cursor]
		m.cursor++
		a.copySteps++
	}
	if m.cursor >= m.srcSize {
		m.src.release()
		a.mig = nil
	}
}
