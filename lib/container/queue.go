package container

import (
	"github.com/noshiro-pf/immu/lib/optional"
)

// minCapacity is the smallest backing buffer either container allocates.
const minCapacity = 8

// --------------------------------------------------------------------------
// Ring Buffer Queue (FIFO)
// --------------------------------------------------------------------------

// Queue is an unbounded FIFO queue over a growable circular buffer. The
// logical window of live elements is [head, head+count) modulo the buffer
// capacity, so dequeuing never shifts elements.
//
// Thread-safety: Queue is not safe for concurrent use. It must be owned by
// a single goroutine or externally synchronized.
type Queue[T any] struct {
	buf   []T
	head  int
	tail  int
	count int
}

// NewQueue creates a queue holding the seed elements in order. The initial
// capacity is max(8, 2*len(seed)).
func NewQueue[T any](seed ...T) *Queue[T] {
	capacity := max(minCapacity, 2*len(seed))
	q := &Queue[T]{buf: make([]T, capacity)}
	copy(q.buf, seed)
	q.tail = len(seed) % capacity
	q.count = len(seed)
	return q
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.count }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

// Cap returns the current capacity of the backing buffer.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Enqueue appends v to the back of the queue, doubling the backing buffer
// if it is full. Amortized O(1), worst case O(n) on the doubling step.
func (q *Queue[T]) Enqueue(v T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.count++
}

// Dequeue removes and returns the front element, or none if the queue is
// empty. The vacated slot is cleared so the element becomes collectable.
func (q *Queue[T]) Dequeue() optional.Value[T] {
	if q.count == 0 {
		return optional.None[T]()
	}
	v := q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return optional.Some(v)
}

// grow doubles the buffer and re-linearizes the logical window to start at
// index zero.
func (q *Queue[T]) grow() {
	next := make([]T, 2*len(q.buf))
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
	q.tail = q.count
}
