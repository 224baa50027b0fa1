package smootharray

import "testing"

func TestMetricsInitial(t *testing.T) {
	a := New[int](0)
	defer a.Release()

	if a.Capacity() != 0 || a.TotalCapacity() != 0 {
		t.Error("expected zero capacity before first append")
	}
	if a.Migrating() {
		t.Error("new array should be stable")
	}
	if a.MigrationProgress() != 1 {
		t.Errorf("MigrationProgress = %f, want 1.0 while stable", a.MigrationProgress())
	}
	if a.Utilization() != 0 {
		t.Errorf("Utilization = %f, want 0", a.Utilization())
	}
	if a.GrowthFactor() != DefaultGrowthFactor {
		t.Errorf("GrowthFactor = %d, want %d", a.GrowthFactor(), DefaultGrowthFactor)
	}
}

func TestCountersAcrossGrowth(t *testing.T) {
	a := New[int](0)
	defer a.Release()

	// Growing to 8 elements allocates buffers of 1, 2, 4 and 8 slots and
	// copies 1 + 2 + 4 elements incrementally.
	for i := 0; i < 8; i++ {
		mustAppend(t, a, i)
	}
	if a.Allocations() != 4 {
		t.Errorf("Allocations = %d, want 4", a.Allocations())
	}
	if a.CopySteps() != 7 {
		t.Errorf("CopySteps = %d, want 7", a.CopySteps())
	}
}

func TestMigrationProgress(t *testing.T) {
	a := From(0, 1, 2, 3)
	defer a.Release()

	steps := []struct {
		value int
		want  float64
	}{
		{4, 0.25},
		{5, 0.5},
		{6, 0.75},
	}
	for _, s := range steps {
		mustAppend(t, a, s.value)
		if got := a.MigrationProgress(); got != s.want {
			t.Errorf("after appending %d: MigrationProgress = %f, want %f", s.value, got, s.want)
		}
	}
	mustAppend(t, a, 7)
	if got := a.MigrationProgress(); got != 1 {
		t.Errorf("after settling: MigrationProgress = %f, want 1.0", got)
	}
}

func TestMetricsDuringMigration(t *testing.T) {
	a := From(0, 1, 2, 3)
	defer a.Release()
	mustAppend(t, a, 4)

	if a.Capacity() != 8 {
		t.Errorf("Capacity = %d, want 8", a.Capacity())
	}
	if a.TotalCapacity() != 12 {
		t.Errorf("TotalCapacity = %d, want 12 (source 4 + destination 8)", a.TotalCapacity())
	}
	if got, want := a.Utilization(), 5.0/12.0; got != want {
		t.Errorf("Utilization = %f, want %f", got, want)
	}
}

func TestMetricsSnapshot(t *testing.T) {
	a := From(0, 1, 2, 3)
	defer a.Release()
	mustAppend(t, a, 4)

	m := a.Metrics()
	if m.Len != a.Len() {
		t.Error("Metrics.Len mismatch")
	}
	if m.Capacity != a.Capacity() {
		t.Error("Metrics.Capacity mismatch")
	}
	if m.TotalCapacity != a.TotalCapacity() {
		t.Error("Metrics.TotalCapacity mismatch")
	}
	if m.Migrating != a.Migrating() {
		t.Error("Metrics.Migrating mismatch")
	}
	if m.MigrationProgress != a.MigrationProgress() {
		t.Error("Metrics.MigrationProgress mismatch")
	}
	if m.CopySteps != a.CopySteps() {
		t.Error("Metrics.CopySteps mismatch")
	}
	if m.Allocations != a.Allocations() {
		t.Error("Metrics.Allocations mismatch")
	}
}
