// Package keyed implements a priority queue whose entries are addressable
// by a unique key, supporting priority updates and removal of arbitrary
// entries in O(log n).
//
// The queue is a binary heap over key/value entries with a map for O(1) key
// lookups. Updating a key's value resifts the affected entry in whichever
// direction its priority moved, so a scheduler can raise or lower pending
// work without rebuilding the queue.
//
// Basic usage:
//
//	// Smaller values drain first
//	q := keyed.New[string, int](func(a, b int) bool {
//	    return a < b
//	})
//
//	q.Set("task1", 5)
//	q.Set("task2", 3)
//	q.Set("task1", 1) // raises task1 above task2
//
//	for q.Len() > 0 {
//	    key, value, _ := q.Pop()
//	    fmt.Printf("%s = %d\n", key, value)
//	}
//
// Like the root heapq package, this implementation is not thread-safe and
// makes no ordering promise among entries whose values compare equal.
package keyed
