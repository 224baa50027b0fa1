// Package smootharray implements a dynamic array with a strict,
// non-amortized O(1) append.
//
// # Overview
//
// Ordinary dynamic arrays have amortized O(1) append: most calls are
// cheap, but the call that triggers a reallocation copies every element
// and costs O(n). SmoothArray removes that stall by spreading the copy
// across subsequent appends. When the buffer fills, a larger buffer is
// allocated and each following append moves exactly one element from the
// old buffer to the new one, so the migration finishes exactly when the
// new buffer becomes full. This is useful for:
//
//   - Latency-sensitive request handlers with bounded time budgets
//   - Soft real-time loops that cannot absorb an occasional O(n) append
//   - Any workload where tail latency matters more than mean latency
//
// # Basic Usage
//
//	arr := smootharray.New[int](0) // Use the default growth factor (2)
//	defer arr.Release()            // Clean up when done
//
//	for i := 0; i < 1000; i++ {
//		if err := arr.Append(i); err != nil {
//			// Only possible failure is capacity overflow
//		}
//	}
//
//	v, _ := arr.Get(42)
//	n := arr.Len()
//	_, _ = v, n
//
// # How It Works
//
// The array is always in one of two states. In the stable state a single
// buffer holds every element. When an append finds that buffer full, a
// destination buffer of growthFactor times the capacity is allocated and
// the array enters the migrating state: each append (including the one
// that triggered the growth) first copies one element from the source
// buffer into the destination, then writes the new value. With the
// default factor of 2 the number of appends needed to fill the
// destination equals the number of elements left to copy, so both finish
// on the same call and the source buffer is released in O(1).
//
// Reads resolve against whichever buffer logically holds the index:
// already-copied and freshly-appended elements live in the destination,
// not-yet-copied elements still live in the source. The branch is a pure
// O(1) function of the index and the migration cursor.
//
// # Thread Safety
//
// The basic Array type is not thread-safe. For concurrent access, use
// SafeArray:
//
//	arr := smootharray.NewSafe[int](0)
//	defer arr.Release()
//
//	// All operations are thread-safe
//	_ = arr.Append(1)
//
// # Performance Characteristics
//
//   - Append: O(1) worst case — at most one element copy plus one write
//     per call, independent of array length (the allocation at migration
//     start is a single make call, treated as an opaque primitive)
//   - Get/Set: O(1)
//   - Insert/RemoveAt: O(n) convenience operations, not covered by the
//     append bound
//   - Memory: at most 3x the pre-migration capacity while a migration is
//     in flight, settling to at most 2x the element count
//
// # Important Notes
//
//   - The first append lazily allocates a capacity-1 buffer; empty arrays
//     hold no storage
//   - Release makes the array unusable; subsequent operations panic
//   - The growth factor is fixed at construction and must be at least 2
//
// # Metrics and Monitoring
//
// The array exposes counters and a snapshot for observing migrations:
//
//	m := arr.Metrics()
//	fmt.Printf("migrating: %v (%.0f%%)\n", m.Migrating, m.MigrationProgress*100)
//	fmt.Printf("copy steps so far: %d\n", m.CopySteps)
package smootharray
