package heapq

import (
	"cmp"
	"errors"
	"iter"
)

// ErrEmpty is returned by Pop and Peek when the queue holds no elements.
var ErrEmpty = errors.New("heapq: queue is empty")

// Queue implements a priority queue backed by a binary heap stored in a
// single growable slice.
type Queue[T any] struct {
	items  []T
	higher func(a, b T) bool // returns true if a has higher priority than b
}

// New creates a queue ordered by higher, which reports whether a outranks b.
// The function must describe a strict weak ordering over elements; the
// queue's behaviour is undefined otherwise.
func New[T any](higher func(a, b T) bool, opts ...Option[T]) *Queue[T] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue[T]{
		items:  make([]T, 0, o.capacity),
		higher: higher,
	}
	if len(o.items) > 0 {
		q.items = o.items
		q.heapify()
	}
	return q
}

// NewMax creates a max-heap over the natural ordering of T: Pop returns the
// largest element first.
func NewMax[T cmp.Ordered](opts ...Option[T]) *Queue[T] {
	return New(func(a, b T) bool { return a > b }, opts...)
}

// NewMin creates a min-heap over the natural ordering of T: Pop returns the
// smallest element first.
func NewMin[T cmp.Ordered](opts ...Option[T]) *Queue[T] {
	return New(func(a, b T) bool { return a < b }, opts...)
}

// NewByKey creates a max-heap over the key extracted from each element, so
// arbitrary payloads can be ordered without writing a comparison function.
func NewByKey[T any, K cmp.Ordered](key func(T) K, opts ...Option[T]) *Queue[T] {
	return New(func(a, b T) bool { return key(a) > key(b) }, opts...)
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// Push adds an element to the queue. O(log(n))
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
	q.up(len(q.items) - 1)
}

// Pop removes and returns the highest priority element. It returns ErrEmpty
// if the queue is empty. O(log(n))
func (q *Queue[T]) Pop() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	top := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]

	var zero T
	q.items[last] = zero // drop the reference so the element can be collected
	q.items = q.items[:last]

	if last > 0 {
		q.down(0)
	}
	return top, nil
}

// Peek returns the highest priority element without removing it. It returns
// ErrEmpty if the queue is empty. O(1)
func (q *Queue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[0], nil
}

// Drain returns an iterator that removes and yields elements in priority
// order until the queue is empty. Stopping early leaves the remaining
// elements in the queue.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(q.items) > 0 {
			v, _ := q.Pop()
			if !yield(v) {
				return
			}
		}
	}
}

// heapify establishes the heap property over the full slice in O(n).
func (q *Queue[T]) heapify() {
	for i := len(q.items)/2 - 1; i >= 0; i-- {
		q.down(i)
	}
}

// swap swaps elements at index i and j.
func (q *Queue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// less compares elements at index i and j.
func (q *Queue[T]) less(i, j int) bool {
	return q.higher(q.items[i], q.items[j])
}

// up moves the element at index i up to its proper position.
func (q *Queue[T]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves the element at index i down to its proper position.
func (q *Queue[T]) down(i int) {
	for {
		highest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(q.items) && q.less(left, highest) {
			highest = left
		}
		if right < len(q.items) && q.less(right, highest) {
			highest = right
		}

		if highest == i {
			break
		}

		q.swap(i, highest)
		i = highest
	}
}
