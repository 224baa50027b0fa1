package smootharray

// Capacity returns the capacity of the active buffer (the destination
// buffer while a migration is in flight). Returns 0 before the first
// append or after Release.
func (a *Array[T]) Capacity() int {
	if a.active == nil {
		return 0
	}
	return a.active.capacity()
}

// TotalCapacity returns the combined capacity of every live buffer,
// including the source buffer of an in-flight migration.
func (a *Array[T]) TotalCapacity() int {
	total := a.Capacity()
	if a.mig != nil {
		total += a.mig.src.capacity()
	}
	return total
}

// Migrating reports whether an incremental migration is in flight.
func (a *Array[T]) Migrating() bool {
	return a.mig != nil
}

// MigrationProgress returns the fraction of the source buffer already
// copied into the destination (0.0 to 1.0). Returns 1.0 while stable.
func (a *Array[T]) MigrationProgress() float64 {
	m := a.mig
	if m == nil || m.srcSize == 0 {
		return 1
	}
	return float64(m.cursor) / float64(m.srcSize)
}

// Utilization returns the ratio of elements to total capacity (0.0 to
// 1.0). Returns 0.0 if no storage is allocated.
func (a *Array[T]) Utilization() float64 {
	total := a.TotalCapacity()
	if total == 0 {
		return 0
	}
	return float64(a.size) / float64(total)
}

// CopySteps returns the lifetime count of incremental copy steps. The
// delta across a single Append never exceeds 1; together with the one
// element write per call this bounds per-call work at two element moves.
func (a *Array[T]) CopySteps() uint64 {
	return a.copySteps
}

// Allocations returns the lifetime count of buffer allocations.
func (a *Array[T]) Allocations() uint64 {
	return a.allocs
}

// GrowthFactor returns the capacity multiplier fixed at construction.
func (a *Array[T]) GrowthFactor() int {
	return a.policy.factor
}

// Metrics returns a snapshot of array statistics.
func (a *Array[T]) Metrics() ArrayMetrics {
	return ArrayMetrics{
		Len:               a.Len(),
		Capacity:          a.Capacity(),
		TotalCapacity:     a.TotalCapacity(),
		GrowthFactor:      a.GrowthFactor(),
		Migrating:         a.Migrating(),
		MigrationProgress: a.MigrationProgress(),
		Utilization:       a.Utilization(),
		CopySteps:         a.CopySteps(),
		Allocations:       a.Allocations(),
	}
}

// ArrayMetrics contains statistical information about an array.
type ArrayMetrics struct {
	Len               int     // Elements currently stored
	Capacity          int     // Active buffer capacity
	TotalCapacity     int     // Capacity across both live buffers
	GrowthFactor      int     // Capacity multiplier
	Migrating         bool    // Whether a migration is in flight
	MigrationProgress float64 // Fraction of the source already copied (0.0-1.0)
	Utilization       float64 // Elements / total capacity (0.0-1.0)
	CopySteps         uint64  // Lifetime incremental copy steps
	Allocations       uint64  // Lifetime buffer allocations
}

// Thread-safe metrics for SafeArray

// Capacity thread-safely returns the active buffer capacity.
func (s *SafeArray[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// TotalCapacity thread-safely returns the combined live capacity.
func (s *SafeArray[T]) TotalCapacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalCapacity()
}

// Migrating thread-safely reports whether a migration is in flight.
func (s *SafeArray[T]) Migrating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Migrating()
}

// MigrationProgress thread-safely returns the migration progress.
func (s *SafeArray[T]) MigrationProgress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.MigrationProgress()
}

// Utilization thread-safely returns the ratio of elements to capacity.
func (s *SafeArray[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// CopySteps thread-safely returns the lifetime copy-step count.
func (s *SafeArray[T]) CopySteps() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.CopySteps()
}

// Allocations thread-safely returns the lifetime allocation count.
func (s *SafeArray[T]) Allocations() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocations()
}

// GrowthFactor thread-safely returns the growth factor.
func (s *SafeArray[T]) GrowthFactor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.GrowthFactor()
}

// Metrics thread-safely returns a snapshot of array statistics.
func (s *SafeArray[T]) Metrics() ArrayMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
