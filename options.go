package heapq

// options defines the construction options for a Queue.
type options[T any] struct {
	capacity int
	items    []T
}

// Option is a function that configures a Queue at construction.
type Option[T any] func(*options[T])

// WithCapacity pre-allocates backing storage for n elements, avoiding
// reallocation while the queue grows to that size.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithItems seeds the queue with the given elements, establishing the heap
// property in O(n) rather than pushing them one at a time. The queue takes
// ownership of the slice.
func WithItems[T any](items []T) Option[T] {
	return func(o *options[T]) {
		o.items = items
	}
}
