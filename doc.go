// Package heapq implements a generic priority queue backed by an
// array-based binary heap. The queue always yields its highest priority
// element first, where "highest" is defined by a caller-supplied ordering
// function, and supports insertion and extraction in O(log n).
//
// The heap is stored in a single growable slice: the element at index i has
// its children at indices 2i+1 and 2i+2. Insertion appends to the slice and
// sifts the new element up toward the root; extraction moves the last
// element into the root and sifts it down toward the leaves. Storage grows
// geometrically, so insertion is amortized O(1) in allocations.
//
// Key features:
//   - Generic implementation supporting any element type
//   - Max-heap, min-heap, or custom key ordering via constructors
//   - O(log n) push and pop, O(1) peek
//   - O(n) construction from an existing slice via WithItems
//   - Priority-ordered draining via an iterator
//
// Basic usage:
//
//	// Create a max-heap over ints
//	q := heapq.NewMax[int]()
//
//	q.Push(2)
//	q.Push(5)
//	q.Push(7)
//
//	// Peek at the highest priority element
//	top, err := q.Peek()
//	if err == nil {
//	    fmt.Println(top) // 7
//	}
//
//	// Drain in priority order
//	for v := range q.Drain() {
//	    fmt.Println(v)
//	}
//
// A custom ordering is supplied as a function that reports whether its
// first argument outranks its second:
//
//	q := heapq.New[Task](func(a, b Task) bool {
//	    return a.Deadline.Before(b.Deadline)
//	})
//
// The ordering function must be a strict weak ordering. Elements that
// compare equal are extracted in an unspecified relative order; the queue
// makes no FIFO guarantee among ties.
//
// This is not a thread-safe implementation. Callers sharing a queue across
// goroutines must serialize access themselves.
package heapq
